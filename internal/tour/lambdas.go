package tour

import "github.com/mikey-austin/langtour/pkg/variadic"

// Fn applies op to x and y.
func Fn[T any](x, y T, op func(T, T) T) T {
	return op(x, y)
}

// IntOpAdd adds through Fn with a local closure.
func IntOpAdd(x, y int) int {
	add := func(a, b int) int { return a + b }
	return Fn(x, y, add)
}

// Counter returns a closure that owns its count.
func Counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func ops(env Env) error {
	add := func(x, y float64) float64 { return x + y }
	mul := func(x, y float64) float64 { return x * y }

	lines := [][]variadic.Value{
		{variadic.String("add(3, 4)"), variadic.Float(add(3, 4))},
		{variadic.String("mul(5, 6)"), variadic.Float(mul(5, 6))},
		{variadic.String("Fn(2, 3, mul)"), variadic.Float(Fn(2., 3., mul))},
		{variadic.String("Fn(5, 6, sub)"), variadic.Int(Fn(int64(5), 6, func(a, b int64) int64 { return a - b }))},
		{variadic.String("IntOpAdd(2, 3)"), variadic.Int(IntOpAdd(2, 3))},
	}

	next := Counter()
	lines = append(lines, []variadic.Value{
		variadic.String("counter"),
		variadic.Int(next()),
		variadic.Int(next()),
		variadic.Int(next()),
	})

	for _, line := range lines {
		if err := env.Printer.Print(line...); err != nil {
			return err
		}
	}
	return nil
}
