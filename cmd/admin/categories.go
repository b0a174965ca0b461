package main

import (
	"github.com/spf13/cobra"

	"github.com/joefazee/directory-admin/app/categories"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/models"
)

func newCategoriesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "List and edit main categories",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List main categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.categories()
			if err != nil {
				return s.report(err)
			}
			items, err := svc.ListCategories(cmd.Context(), search)
			if err != nil {
				return s.report(err)
			}
			rows := make([][]string, len(items))
			for i, c := range items {
				rows[i] = []string{c.ID, c.EnglishName, c.ArabicName, s.count(c.SubCategoryCount)}
			}
			s.table([]string{s.msg.T(i18n.ColID), s.msg.T(i18n.ColEnglish), s.msg.T(i18n.ColArabic), s.msg.T(i18n.ColCount)}, rows)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter by either name")

	var names models.CategoryNames
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a main category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := s.categories()
			if err != nil {
				return s.report(err)
			}
			created, err := svc.CreateCategory(cmd.Context(), categories.CategoryRequest(names))
			if err != nil {
				return s.report(err)
			}
			s.success(i18n.Created, created.EnglishName)
			return nil
		},
	}
	nameFlags(create, &names)

	var patch models.CategoryNames
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a main category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.categories()
			if err != nil {
				return s.report(err)
			}
			ctx := cmd.Context()
			// the remote API replaces both names, so unset flags keep the listed value
			if patch.EnglishName == "" || patch.ArabicName == "" {
				items, err := svc.ListCategories(ctx, "")
				if err != nil {
					return s.report(err)
				}
				for _, c := range items {
					if c.ID == args[0] {
						patch = fillNames(patch, c.EnglishName, c.ArabicName)
					}
				}
			}
			updated, err := svc.UpdateCategory(ctx, args[0], categories.CategoryRequest(patch))
			if err != nil {
				return s.report(err)
			}
			s.success(i18n.Updated, updated.EnglishName)
			return nil
		},
	}
	nameFlags(update, &patch)

	var yes bool
	remove := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a main category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !s.confirm(args[0], yes) {
				return nil
			}
			svc, err := s.categories()
			if err != nil {
				return s.report(err)
			}
			if err := svc.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return s.report(err)
			}
			s.success(i18n.Deleted, args[0])
			return nil
		},
	}
	yesFlag(remove, &yes)

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func nameFlags(cmd *cobra.Command, names *models.CategoryNames) {
	cmd.Flags().StringVar(&names.EnglishName, "en", "", "English name")
	cmd.Flags().StringVar(&names.ArabicName, "ar", "", "Arabic name")
}

func yesFlag(cmd *cobra.Command, yes *bool) {
	cmd.Flags().BoolVarP(yes, "yes", "y", false, "skip the confirmation prompt")
}

func fillNames(n models.CategoryNames, english, arabic string) models.CategoryNames {
	if n.EnglishName == "" {
		n.EnglishName = english
	}
	if n.ArabicName == "" {
		n.ArabicName = arabic
	}
	return n
}
