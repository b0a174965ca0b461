package main

import (
	"bufio"
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/joefazee/directory-admin/app"
	"github.com/joefazee/directory-admin/app/categories"
	"github.com/joefazee/directory-admin/app/providers"
	"github.com/joefazee/directory-admin/app/subcategories"
	"github.com/joefazee/directory-admin/internal/deps"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/internal/nexus"
	"github.com/joefazee/directory-admin/internal/prefs"
	"github.com/joefazee/directory-admin/internal/theme"
)

// session is everything one CLI invocation shares. The catalog container is
// built on first use so prefs commands work without a reachable API.
type session struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	prefsPath  string
	verbose    bool
	loadConfig func() (*app.Config, error)

	cfg       *app.Config
	log       logger.Logger
	catalog   *i18n.Catalog
	prefs     *prefs.Store
	msg       *i18n.Localizer
	styles    theme.Styles
	container *deps.Container
}

func newSession(in io.Reader, out, errOut io.Writer) *session {
	return &session{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		loadConfig: func() (*app.Config, error) {
			return app.LoadConfig(nexus.WithOnlyEnvironment())
		},
	}
}

func run(ctx context.Context, s *session, args []string) error {
	defer s.close()
	root := newRootCmd(s)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:               "admin",
		Short:             "Manage the service directory catalog",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.open,
	}
	root.SetOut(s.out)
	root.SetErr(s.errOut)

	root.PersistentFlags().StringVar(&s.prefsPath, "prefs", "", "preferences file (default: PREFS_PATH or the user config dir)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newCategoriesCmd(s),
		newSubCategoriesCmd(s),
		newProvidersCmd(s),
		newPrefsCmd(s),
	)
	return root
}

func (s *session) open(_ *cobra.Command, _ []string) error {
	level := logger.LevelError
	if s.verbose {
		level = logger.LevelDebug
	}
	s.log = logger.NewConsoleLogger(s.errOut, level, nil)

	cfg, err := s.loadConfig()
	if err != nil {
		s.log.Error(err, logger.Fields{"stage": "config"})
		return err
	}
	s.cfg = cfg

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}
	s.catalog = catalog

	path := s.prefsPath
	if path == "" {
		path = cfg.PrefsPath
	}
	if path == "" {
		path = prefs.DefaultPath()
	}
	store, err := prefs.Open(path, s.log)
	if err != nil {
		return err
	}
	s.prefs = store
	s.refresh()
	return nil
}

// refresh re-reads the preferences into the localizer and styles.
func (s *session) refresh() {
	p := s.prefs.Get()
	s.msg = s.catalog.For(p.Language)
	s.styles = theme.New(p)
}

func (s *session) deps() (*deps.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	c, err := deps.Build(s.cfg, s.log, s.prefs.Get().Language)
	if err != nil {
		return nil, err
	}
	s.container = c
	return c, nil
}

func (s *session) categories() (categories.Service, error) {
	c, err := s.deps()
	if err != nil {
		return nil, err
	}
	return categories.Build(c), nil
}

func (s *session) subCategories() (subcategories.Service, error) {
	c, err := s.deps()
	if err != nil {
		return nil, err
	}
	return subcategories.Build(c), nil
}

func (s *session) providers() (providers.Service, error) {
	c, err := s.deps()
	if err != nil {
		return nil, err
	}
	return providers.Build(c), nil
}

func (s *session) close() {
	if s.container == nil {
		return
	}
	if err := s.container.Close(); err != nil && s.log != nil {
		s.log.Error(err, nil)
	}
	s.container = nil
}
