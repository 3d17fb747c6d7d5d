// Command gsbench times Setup/Commit/Prove/Verify across the toy1,
// toy2, and elgamal scenarios and renders the results to a PNG chart.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/groth-sahai/gs"
	"github.com/anupsv/groth-sahai/pkg/bench"
)

func main() {
	iterations := flag.Int("iterations", 20, "number of iterations per scenario")
	msg := flag.Int64("msg", 1, "plaintext bit for the elgamal scenario (0 or 1)")
	output := flag.String("output", "gsbench.png", "output PNG path")
	flag.Parse()

	if *msg != 0 && *msg != 1 {
		fmt.Fprintln(os.Stderr, "Error: -msg must be 0 or 1")
		os.Exit(1)
	}

	scenarios := []gs.Scenario{gs.Toy1(), gs.Toy2(), gs.ElGamal(*msg)}

	fmt.Printf("Running gs benchmarks (%d iterations per scenario)...\n", *iterations)
	results, err := bench.RunAll(scenarios, *iterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running benchmarks: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-10s setup=%-12s commit=%-12s prove=%-12s verify=%-12s\n",
			r.Name, r.Setup, r.Commit, r.Prove, r.Verify)
	}

	if err := bench.RenderPNG(results, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Chart written to %s\n", *output)
}
