// Command mkcharges writes a reproducible random charge set as a fieldlines
// config file.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"fieldlines/field"
	"fieldlines/internal/config"
	"fieldlines/viewport"
)

func main() {
	var (
		outPath = flag.String("out", "", "Output YAML file (- for stdout).")
		npos    = flag.Int("pos", 1, "Positive charges.")
		nneg    = flag.Int("neg", 1, "Negative charges.")
		seed    = flag.Uint64("seed", 1, "Random seed.")
		x0      = flag.Float64("x0", 0, "Left bound.")
		x1      = flag.Float64("x1", 1, "Right bound.")
		y0      = flag.Float64("y0", 0, "Top bound.")
		y1      = flag.Float64("y1", 1, "Bottom bound.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkcharges -out charges.yaml [-pos 1] [-neg 1] [-seed 1] [-x0 0 -x1 1 -y0 0 -y1 1]")
	}
	b := viewport.Bounds{X0: *x0, X1: *x1, Y0: *y0, Y1: *y1}
	if !b.Valid() {
		fatalf("bad bounds [%g,%g]x[%g,%g]", *x0, *x1, *y0, *y1)
	}
	if *npos < 0 || *nneg < 0 {
		fatalf("charge counts must not be negative")
	}

	data, err := chargesDocument(b, *npos, *nneg, *seed)
	if err != nil {
		fatalf("encode: %v", err)
	}
	if err := writeOut(*outPath, data); err != nil {
		fatalf("write: %v", err)
	}
}

// chargesDocument draws the charges and encodes them with the bounds they
// were drawn in.
func chargesDocument(b viewport.Bounds, npos, nneg int, seed uint64) ([]byte, error) {
	rng := rand.New(rand.NewPCG(seed, 0))
	cs := field.RandomCharges(rng, b.Box(), npos, nneg, field.ElementaryCharge)

	doc := &config.Config{
		Bounds:  config.BoundsConfig{X0: b.X0, X1: b.X1, Y0: b.Y0, Y1: b.Y1},
		Charges: config.ChargesFrom(cs, field.ElementaryCharge),
	}
	return doc.Marshal()
}

func writeOut(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
