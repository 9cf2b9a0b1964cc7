package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/langtour/internal/core"
	"github.com/mikey-austin/langtour/internal/tour"
)

func tourCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tour [section...]",
		Short: "Run tour sections (all by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			ctx, cancel := withTimeout(context.Background(), app.timeout)
			defer cancel()

			keys := args
			if len(keys) == 0 {
				keys = app.config.Sections
			}
			result, err := app.runner.Run(ctx, keys...)
			if err != nil {
				return err
			}
			app.log.Debug("tour complete",
				zap.Strings("requested", keys),
				zap.Int("sections", len(result.Sections)),
			)
			return app.print(result)
		},
	}
}

func sectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List tour sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			var result core.SectionListResult
			for _, s := range tour.Sections() {
				result.Sections = append(result.Sections, core.SectionInfo{Key: s.Key, Title: s.Title})
			}
			return app.print(result)
		},
	}
}
