package tour

import (
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/mikey-austin/langtour/pkg/tuple"
	"github.com/mikey-austin/langtour/pkg/variadic"
)

// ReturnTwoInts returns a pair built in one expression.
func ReturnTwoInts() fn.T2[int, int] {
	return fn.NewT2(3, 4)
}

func tuples(env Env) error {
	x, y := ReturnTwoInts().Unpack()
	if err := env.Printer.Print(variadic.String("ReturnTwoInts"), variadic.Int(x), variadic.Int(y)); err != nil {
		return err
	}

	index := []fn.T2[int, int]{
		fn.NewT2(1, 1),
		fn.NewT2(2, 2),
		fn.NewT2(3, 3),
	}
	i, j := index[1].First(), index[1].Second()
	if err := env.Printer.Print(variadic.String("index[1]"), variadic.Int(i), variadic.Int(j)); err != nil {
		return err
	}

	clock := []variadic.Value{variadic.Int(1), variadic.Int(12), variadic.Int(15), variadic.Int(123), variadic.String("PM")}
	longitude := []variadic.Value{variadic.Int(132), variadic.Int(12), variadic.Int(146), variadic.String("W")}
	latitude := []variadic.Value{variadic.Int(45), variadic.Int(17), variadic.Int(4631), variadic.String("N")}

	err := env.Expander.Print(
		variadic.String("At "),
		clock[0], variadic.String(":"),
		clock[1], variadic.String(":"),
		clock[2], variadic.String("."),
		clock[3], variadic.String(" "),
		clock[4], variadic.String(" "),
		variadic.String("Location was: "),
		longitude[0], variadic.String(" "),
		longitude[1], variadic.String("."),
		longitude[2], variadic.String(" "),
		longitude[3], variadic.String(" AND "),
		latitude[0], variadic.String(" "),
		latitude[1], variadic.String("."),
		latitude[2], variadic.String(" "),
		latitude[3],
	)
	if err != nil {
		return err
	}

	fix := tuple.NewFix(env.Clock.Now, 34.235432, 132.141689)
	err = env.Expander.Print(
		variadic.String("Time: "),
		variadic.Int(fix.First().Hour()),
		variadic.String(":"),
		variadic.Int(fix.First().Minute()),
		variadic.String(" Long: "),
		variadic.Float(fix.Second().First()),
		variadic.String(" Lat: "),
		variadic.Float(fix.Second().Second()),
	)
	if err != nil {
		return err
	}

	when, pos := fix.Unpack()
	lon, lat := pos.Unpack()
	return env.Expander.Print(
		variadic.String("Current Time: "),
		variadic.Int(when.Hour()),
		variadic.String(":"),
		variadic.Int(when.Minute()),
		variadic.String(" Current Long: "),
		variadic.Float(lon),
		variadic.String(" Current Lat: "),
		variadic.Float(lat),
	)
}

func tupleApply(env Env) error {
	show := func(a int, b float64, c string) error {
		return env.Expander.Print(
			variadic.Int(a), variadic.String(", "),
			variadic.Float(b), variadic.String(", "),
			variadic.String(c),
		)
	}
	return tuple.Apply3(show, tuple.NewT3(42, 3.14, "hello"))
}
