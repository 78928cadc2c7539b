// Command curveboot is a convenience CLI over pkg/core/curve: it reads
// a JSON scenario file of swap/futures/bond observations and prints
// the bootstrapped curve as CSV. It holds no state between runs — the
// library call is the entire unit of work (spec.md §6).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"curveboot/pkg/core/convention"
	"curveboot/pkg/core/curve"

	"github.com/google/uuid"
)

// scenario is the on-disk JSON shape the CLI reads.
type scenario struct {
	Currency string           `json:"currency"`
	Method   curve.Method     `json:"method"`
	Swaps    []curve.RawPoint `json:"swaps"`
	Futures  []curve.RawPoint `json:"futures"`
	Bonds    []curve.RawPoint `json:"bonds"`
}

func main() {
	inputPath := flag.String("in", "", "path to a JSON scenario file")
	outputPath := flag.String("out", "", "path to write the CSV curve to (defaults to stdout)")
	overridesPath := flag.String("conventions", "", "optional YAML file of extra currency conventions")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "curveboot: -in <scenario.json> is required")
		os.Exit(1)
	}

	if *overridesPath != "" {
		if err := convention.LoadOverrides(*overridesPath); err != nil {
			log.Printf("[curveboot] WARNING: failed to load convention overrides: %v", err)
		}
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curveboot: reading scenario file: %v\n", err)
		os.Exit(1)
	}

	var s scenario
	if err := json.Unmarshal(data, &s); err != nil {
		fmt.Fprintf(os.Stderr, "curveboot: parsing scenario file: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.New().String()
	log.Printf("[curveboot] run=%s currency=%s method=%s", runID, s.Currency, s.Method)

	var result curve.BootstrapResult
	if len(s.Bonds) > 0 {
		result = curve.BootstrapBonds(s.Bonds, s.Method, s.Currency)
	} else {
		result = curve.Bootstrap(s.Swaps, s.Futures, s.Method, s.Currency)
	}

	log.Printf("[curveboot] run=%s grid_points=%d", runID, len(result.DiscountFactors))

	csv := curve.ExportCSV(result)
	if *outputPath == "" {
		fmt.Print(csv)
		return
	}
	if err := os.WriteFile(*outputPath, []byte(csv), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "curveboot: writing output file: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[curveboot] run=%s wrote %s", runID, *outputPath)
}
