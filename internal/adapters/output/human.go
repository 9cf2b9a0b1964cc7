package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/mikey-austin/langtour/internal/core"
)

// HumanPrinter prints human-readable output, to stdout when W is nil.
type HumanPrinter struct {
	W     io.Writer
	Color bool
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	w := writerOrStdout(p.W)
	switch data := v.(type) {
	case core.TourResult:
		return p.printTour(w, data)
	case core.SectionResult:
		return p.printSection(w, data, true)
	case core.SectionListResult:
		return printSectionList(w, data)
	case core.LineResult:
		_, err := io.WriteString(w, data.Line)
		return err
	default:
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
}

func (p HumanPrinter) printTour(w io.Writer, result core.TourResult) error {
	for i, section := range result.Sections {
		if err := p.printSection(w, section, i == 0); err != nil {
			return err
		}
	}
	return nil
}

func (p HumanPrinter) printSection(w io.Writer, section core.SectionResult, first bool) error {
	if !first {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, p.header(section.Title)); err != nil {
		return err
	}
	for _, line := range section.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p HumanPrinter) header(title string) string {
	if !p.Color {
		return "Sample: " + title
	}
	return strings.TrimSpace(pterm.DefaultSection.Sprint("Sample: " + title))
}

func printSectionList(w io.Writer, result core.SectionListResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "KEY\tTITLE"); err != nil {
		return err
	}
	for _, s := range result.Sections {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", s.Key, s.Title); err != nil {
			return err
		}
	}
	return tw.Flush()
}
