package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/prefs"
)

func newPrefsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the display theme and language",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := s.prefs.Get()
			fmt.Fprintln(s.out, s.styles.Title.Render(s.prefs.Path()))
			s.table(
				[]string{s.msg.T(i18n.ColTheme), s.msg.T(i18n.ColLanguage), s.msg.T(i18n.ColDirection)},
				[][]string{{string(p.Theme), p.Language.String(), string(p.Language.Direction())}},
			)
			return nil
		},
	}

	theme := &cobra.Command{
		Use:       "theme light|dark",
		Short:     "Switch the colour theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.Light), string(prefs.Dark)},
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := prefs.ParseTheme(args[0])
			if err != nil {
				return s.report(err)
			}
			if err := s.prefs.SetTheme(t); err != nil {
				return s.report(err)
			}
			s.refresh()
			s.success(i18n.ThemeSet, string(t))
			return nil
		},
	}

	lang := &cobra.Command{
		Use:       "lang en|ar",
		Short:     "Switch the display language",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(i18n.English), string(i18n.Arabic)},
		RunE: func(_ *cobra.Command, args []string) error {
			l, err := i18n.ParseLanguage(args[0])
			if err != nil {
				return s.report(err)
			}
			if err := s.prefs.SetLanguage(l); err != nil {
				return s.report(err)
			}
			s.refresh()
			s.success(i18n.LanguageSet, l.String())
			return nil
		},
	}

	cmd.AddCommand(show, theme, lang)
	return cmd
}
