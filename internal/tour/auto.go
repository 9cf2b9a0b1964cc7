package tour

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey-austin/langtour/pkg/variadic"
)

// sampleAuto shows locals whose types are inferred from their initializer.
func sampleAuto(env Env) error {
	var p *int
	n := 1
	x := 3.14
	pn := &n
	self := sampleAuto

	locals := []struct {
		name  string
		value any
	}{
		{"p", p},
		{"n", n},
		{"x", x},
		{"pn", pn},
		{"self", self},
	}
	env.Log.Debug("inferred locals", zap.Int("count", len(locals)))
	for _, local := range locals {
		err := env.Printer.Print(variadic.String(local.name), variadic.String(fmt.Sprintf("%T", local.value)))
		if err != nil {
			return err
		}
	}
	return nil
}
