package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikey-austin/langtour/internal/core"
	"github.com/mikey-austin/langtour/pkg/variadic"
)

func printCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [literal...]",
		Short: "Print literals as one separated line",
		Long: "Print parses each literal ('c' or an escape like '\\n' is a rune, \"text\" a string, then bools, " +
			"integers and floats) and prints them as one line, each value followed by the separator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			return app.print(renderLine(variadic.ParseAll(args), printerOptions(app.config)...))
		},
	}
}

func expandCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [literal...]",
		Short: "Concatenate literals into one line",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			opts := append(printerOptions(app.config), variadic.WithSeparator(""))
			return app.print(renderLine(variadic.ParseAll(args), opts...))
		},
	}
}

func renderLine(values []variadic.Value, opts ...variadic.Option) core.LineResult {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = variadic.NewPrinter(&b, opts...).Print(values...)
	return core.LineResult{Values: variadic.Texts(values...), Line: b.String()}
}
