package bitgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/bitgo"
	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/blas"
)

// Example_vector demonstrates creating vectors and folding operators.
func Example_vector() {
	ctx := context.Background()

	eng, err := bitgo.New()
	if err != nil {
		log.Fatal(err)
	}

	a := bit.VectorOf(true, false, false)
	b := bit.VectorOf(false, false, true)

	d, _ := eng.Execute(ctx, "math/bit/vector/hammingdistance", a, b)
	fmt.Println("hamming:", d[0])

	if _, err := eng.Execute(ctx, "math/bit/vector/or", a, b); err != nil {
		log.Fatal(err)
	}
	fmt.Println("a|b:", a)
	// Output:
	// hamming: 2
	// a|b: 101
}

// Example_matrix demonstrates row-major addressing and numeric conversion.
func Example_matrix() {
	ctx := context.Background()

	eng, err := bitgo.New(bitgo.WithDefaultFormat(blas.FormatSparse))
	if err != nil {
		log.Fatal(err)
	}

	out, _ := eng.Execute(ctx, "math/bit/matrix/create", 2, 2)
	m := out[0].(*bit.Matrix)

	// (column, row) pairs
	if _, err := eng.Execute(ctx, "math/bit/matrix/set", m, true, 1, 0, 0, 1, 1, 1); err != nil {
		log.Fatal(err)
	}

	out, _ = eng.Execute(ctx, "math/bit/matrix/toblas", m)
	fmt.Println(out[0].(blas.Matrix).ToArray())

	out, _ = eng.Execute(ctx, "math/bit/matrix/tovector", m)
	fmt.Println(out[0])
	// Output:
	// [[0 1] [1 1]]
	// 0111
}

// Example_metrics demonstrates collecting per-action statistics.
func Example_metrics() {
	metrics := &bitgo.BasicMetricsCollector{}

	eng, err := bitgo.New(bitgo.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	v := bit.VectorOf(true, true)

	_, _ = eng.Execute(ctx, "math/bit/vector/not", v)
	_, _ = eng.Execute(ctx, "math/bit/vector/range", v)

	stats := metrics.GetStats()
	fmt.Println(stats.ActionCount, stats.ActionErrors)
	// Output: 2 1
}
