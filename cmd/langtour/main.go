package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/langtour/internal/adapters/clock"
	"github.com/mikey-austin/langtour/internal/adapters/config"
	"github.com/mikey-austin/langtour/internal/adapters/idgen"
	"github.com/mikey-austin/langtour/internal/adapters/output"
	"github.com/mikey-austin/langtour/internal/core"
	"github.com/mikey-austin/langtour/internal/logging"
	"github.com/mikey-austin/langtour/internal/tour"
	"github.com/mikey-austin/langtour/pkg/variadic"
)

type app struct {
	config  core.Config
	printer output.Printer
	runner  tour.Runner
	log     *zap.Logger
	timeout time.Duration
}

func main() {
	root := rootCommand(os.Stdout)
	err := root.Execute()
	if err != nil {
		os.Exit(core.ExitCode(err))
	}
}

func rootCommand(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "langtour",
		Short:        "Tour of Go language constructs",
		SilenceUsage: true,
	}
	root.SetOut(stdout)

	var (
		configPath string
		format     string
		separator  string
		terminator string
		noColor    bool
		verbose    bool
		timeout    time.Duration
	)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	root.PersistentFlags().StringVarP(&format, "format", "f", "", "output format (human|json|yaml)")
	root.PersistentFlags().StringVar(&separator, "sep", variadic.DefaultSeparator, "separator written after each value")
	root.PersistentFlags().StringVar(&terminator, "term", variadic.DefaultTerminator, "line terminator")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "run timeout")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		fileCfg, err := loadConfig(configPath)
		if err != nil {
			return core.WrapError(core.ExitUsage, "load config", err)
		}

		cfg := core.Config{
			Separator:  variadic.DefaultSeparator,
			Terminator: variadic.DefaultTerminator,
			Format:     core.FormatHuman,
			Color:      true,
			Sections:   fileCfg.Sections,
		}
		if fileCfg.Separator != nil {
			cfg.Separator = *fileCfg.Separator
		}
		if fileCfg.Terminator != nil {
			cfg.Terminator = *fileCfg.Terminator
		}
		if fileCfg.Format != "" {
			cfg.Format = fileCfg.Format
		}
		if fileCfg.Color != nil {
			cfg.Color = *fileCfg.Color
		}
		flags := cmd.Flags()
		if flags.Changed("sep") {
			cfg.Separator = separator
		}
		if flags.Changed("term") {
			cfg.Terminator = terminator
		}
		if format != "" {
			cfg.Format = format
		}
		if noColor {
			cfg.Color = false
		}
		if !core.ValidFormat(cfg.Format) {
			return core.UsageError("unknown output format %q (human|json|yaml)", cfg.Format)
		}

		logCfg := logging.LogConfig{
			Level:     fileCfg.Log.Level,
			Format:    fileCfg.Log.Format,
			Output:    fileCfg.Log.Output,
			AddSource: fileCfg.Log.Source,
			UTC:       fileCfg.Log.UTC,
		}
		if logCfg.Level == "" {
			logCfg.Level = "warn"
		}
		if verbose {
			logCfg.Level = "debug"
		}
		logger := logging.NewLogger(logCfg)
		logger.Debug("config resolved",
			zap.String("format", cfg.Format),
			zap.String("separator", cfg.Separator),
			zap.Bool("color", cfg.Color),
			zap.Strings("sections", cfg.Sections),
		)

		printer, err := output.New(cfg.Format, cmd.OutOrStdout(), cfg.Color)
		if err != nil {
			return err
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			config:  cfg,
			printer: printer,
			runner: tour.Runner{
				Clock:   clock.Clock{},
				IDGen:   idgen.Generator{},
				Log:     logger,
				Options: printerOptions(cfg),
			},
			log:     logger,
			timeout: timeout,
		}))
		return nil
	}

	root.AddCommand(tourCommand())
	root.AddCommand(sectionsCommand())
	root.AddCommand(printCommand())
	root.AddCommand(expandCommand())

	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func printerOptions(cfg core.Config) []variadic.Option {
	return []variadic.Option{
		variadic.WithSeparator(cfg.Separator),
		variadic.WithTerminator(cfg.Terminator),
	}
}

func (a *app) print(v any) error {
	if err := a.printer.Print(v); err != nil {
		return core.WrapError(core.ExitRuntime, fmt.Sprintf("write %s output", a.config.Format), err)
	}
	return nil
}
