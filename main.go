package main

import (
	"fmt"
	"os"

	"kozytweaks/config"
	"kozytweaks/internal/domain/content"
	"kozytweaks/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	verbose     bool
	contentPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kozytweaks",
		Short: "KozyTweaks landing site",
		Long: `Serves the KozyTweaks landing page and its legal pages.

Content (features, plans, checkout links, legal text) is read from a YAML
file at startup, or the built-in copy when none is given. Run without a
subcommand to start the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if a.contentPath != "" {
				cfg.ContentFile = a.contentPath
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.LogLevel, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.contentPath, "content", "", "path to a content YAML file (overrides CONTENT_FILE)")

	root.AddCommand(a.serveCmd(), a.validateCmd(), a.exportCmd())
	return root
}

// loadContent reads and validates the configured content, logging every
// problem when it is rejected.
func (a *app) loadContent() (*content.Content, error) {
	ct, err := content.Load(a.cfg.ContentFile)
	if err != nil {
		a.logger.Error("content rejected", zap.String("file", a.cfg.ContentFile), zap.Error(err))
		return nil, err
	}

	a.logger.Info("content loaded",
		zap.String("file", a.cfg.ContentFile),
		zap.Int("features", len(ct.Features)),
		zap.Int("plans", len(ct.Plans)),
		zap.Int("testimonials", len(ct.Testimonials)),
		zap.Bool("show_testimonials", ct.ShowTestimonials),
	)
	return ct, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
