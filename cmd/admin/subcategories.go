package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/joefazee/directory-admin/app/subcategories"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/models"
)

func newSubCategoriesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subcategories",
		Aliases: []string{"sub"},
		Short:   "List and edit the sub-categories of a main category",
	}

	var search string
	list := &cobra.Command{
		Use:   "list MAIN_ID",
		Short: "List sub-categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.subCategories()
			if err != nil {
				return s.report(err)
			}
			items, err := svc.ListSubCategories(cmd.Context(), args[0], search)
			if err != nil {
				return s.report(err)
			}
			rows := make([][]string, len(items))
			for i, c := range items {
				rows[i] = []string{c.ID, c.EnglishName, c.ArabicName, s.count(c.ServiceProviderCount)}
			}
			s.table([]string{s.msg.T(i18n.ColID), s.msg.T(i18n.ColEnglish), s.msg.T(i18n.ColArabic), s.msg.T(i18n.ColCount)}, rows)
			return nil
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "filter by either name")

	var names models.CategoryNames
	create := &cobra.Command{
		Use:   "create MAIN_ID",
		Short: "Create a sub-category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.subCategories()
			if err != nil {
				return s.report(err)
			}
			ctx := cmd.Context()
			// the main category must be known locally before a child is added
			if err := s.loadCategories(ctx); err != nil {
				return s.report(err)
			}
			created, err := svc.CreateSubCategory(ctx, args[0], subcategories.SubCategoryRequest(names))
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
		Use:   "update MAIN_ID ID",
		Short: "Rename a sub-category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.subCategories()
			if err != nil {
				return s.report(err)
			}
			ctx := cmd.Context()
			if patch.EnglishName == "" || patch.ArabicName == "" {
				items, err := svc.ListSubCategories(ctx, args[0], "")
				if err != nil {
					return s.report(err)
				}
				for _, c := range items {
					if c.ID == args[1] {
						patch = fillNames(patch, c.EnglishName, c.ArabicName)
					}
				}
			}
			updated, err := svc.UpdateSubCategory(ctx, args[0], args[1], subcategories.SubCategoryRequest(patch))
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
		Use:   "delete MAIN_ID ID",
		Short: "Delete a sub-category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !s.confirm(args[1], yes) {
				return nil
			}
			svc, err := s.subCategories()
			if err != nil {
				return s.report(err)
			}
			if err := svc.DeleteSubCategory(cmd.Context(), args[0], args[1]); err != nil {
				return s.report(err)
			}
			s.success(i18n.Deleted, args[1])
			return nil
		},
	}
	yesFlag(remove, &yes)

	cmd.AddCommand(list, create, update, remove)
	return cmd
}

func (s *session) loadCategories(ctx context.Context) error {
	svc, err := s.categories()
	if err != nil {
		return err
	}
	_, err = svc.ListCategories(ctx, "")
	return err
}
