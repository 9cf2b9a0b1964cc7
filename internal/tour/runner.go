package tour

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey-austin/langtour/internal/adapters/clock"
	"github.com/mikey-austin/langtour/internal/core"
	"github.com/mikey-austin/langtour/internal/ports"
	"github.com/mikey-austin/langtour/pkg/variadic"
)

// Runner executes sections and captures their output.
type Runner struct {
	Clock   ports.Clock
	IDGen   ports.IDGen
	Log     *zap.Logger
	Options []variadic.Option
}

// Run executes the sections named by keys, or every section when keys is
// empty. Sections always run in registry order. Unknown keys fail before any
// section runs.
func (r Runner) Run(ctx context.Context, keys ...string) (core.TourResult, error) {
	selected, err := selectSections(keys)
	if err != nil {
		return core.TourResult{}, err
	}

	log := r.logger()
	if r.IDGen != nil {
		log = log.With(zap.String("run_id", r.IDGen.NewID()))
	}

	result := core.TourResult{Sections: make([]core.SectionResult, 0, len(selected))}
	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		sectionLog := log.With(zap.String("section", s.Key))

		var buf bytes.Buffer
		env := Env{
			Printer:  variadic.NewPrinter(&buf, r.Options...),
			Expander: variadic.NewPrinter(&buf, r.expandOptions()...),
			Out:      &buf,
			Clock:    r.clock(),
			Log:      sectionLog,
		}
		start := time.Now()
		if err := s.Run(env); err != nil {
			sectionLog.Error("section failed", zap.Error(err))
			return result, core.WrapError(core.ExitRuntime, fmt.Sprintf("section %s", s.Key), err)
		}
		elapsed := time.Since(start)
		lines := splitLines(buf.String())
		sectionLog.Debug("section done",
			zap.Int("lines", len(lines)),
			zap.Duration("elapsed", elapsed),
		)
		result.Sections = append(result.Sections, core.SectionResult{
			Key:     s.Key,
			Title:   s.Title,
			Lines:   lines,
			Elapsed: elapsed,
		})
	}
	return result, nil
}

func (r Runner) expandOptions() []variadic.Option {
	opts := make([]variadic.Option, 0, len(r.Options)+1)
	opts = append(opts, r.Options...)
	return append(opts, variadic.WithSeparator(""))
}

func (r Runner) clock() ports.Clock {
	if r.Clock == nil {
		return clock.Clock{}
	}
	return r.Clock
}

func (r Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func selectSections(keys []string) ([]Section, error) {
	if len(keys) == 0 {
		return Sections(), nil
	}
	want := make(map[string]bool, len(keys))
	for _, key := range keys {
		if _, ok := Lookup(key); !ok {
			return nil, core.NotFoundError("unknown section %q", key)
		}
		want[key] = true
	}
	var out []Section
	for _, s := range sections {
		if want[s.Key] {
			out = append(out, s)
		}
	}
	return out, nil
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
