package main

import (
	"fmt"
	"time"

	"kozytweaks/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site into static HTML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.loadContent()
			if err != nil {
				return err
			}

			written, err := export.Export(outDir, ct, time.Now())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			for _, path := range written {
				a.logger.Debug("wrote", zap.String("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			a.logger.Info("export complete", zap.String("dir", outDir), zap.Int("files", len(written)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
	return cmd
}
