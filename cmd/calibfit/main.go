// Command calibfit fits the two calibration tables and prints the fitted
// coefficients and per-point residuals, for checking new calibration data
// before it goes into production use.
package main

import (
	"flag"
	"fmt"
	"os"

	"bite-tracer/internal/calibration"
)

func main() {
	forceTable := flag.String("force-table", "", "Force correction table (JSON)")
	weightTable := flag.String("weight-table", "", "Pixel weight correction table (JSON)")
	flag.Parse()

	if *forceTable == "" && *weightTable == "" {
		fmt.Println("Usage: calibfit [-force-table <path>] [-weight-table <path>]")
		os.Exit(1)
	}

	if *forceTable != "" {
		if err := fitForce(*forceTable); err != nil {
			fmt.Fprintf(os.Stderr, "Force correction fit failed: %v\n", err)
			os.Exit(1)
		}
	}
	if *weightTable != "" {
		if err := fitWeight(*weightTable); err != nil {
			fmt.Fprintf(os.Stderr, "Pixel weight fit failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func fitForce(path string) error {
	table, err := calibration.LoadForceCorrectionTable(path)
	if err != nil {
		return err
	}
	model, err := calibration.FitForceCorrection(table)
	if err != nil {
		return err
	}

	fmt.Printf("Force correction (degree-2 polynomial, %d points)\n", len(table.XComputed))
	fmt.Printf("  y = %.6g + %.6g*x + %.6g*x^2\n", model.Coeffs[0], model.Coeffs[1], model.Coeffs[2])
	printResiduals(table.XComputed, table.YMeasured, model.EvalAll(table.XComputed))
	return nil
}

func fitWeight(path string) error {
	table, err := calibration.LoadPixelWeightTable(path)
	if err != nil {
		return err
	}
	model, err := calibration.FitPixelWeight(table)
	if err != nil {
		return err
	}

	fmt.Printf("Pixel weight correction (exponential, %d points)\n", len(table.PixelWeight))
	fmt.Printf("  y = %.6g * exp(%.6g*x) + %.6g\n", model.A, model.B, model.C)
	printResiduals(table.PixelWeight, table.ForceN, model.EvalAll(table.PixelWeight))
	return nil
}

func printResiduals(xs, ys, fitted []float64) {
	fmt.Printf("  %12s %12s %12s %12s\n", "x", "y", "fitted", "residual")
	for i := range xs {
		fmt.Printf("  %12.4f %12.4f %12.4f %12.4f\n", xs[i], ys[i], fitted[i], ys[i]-fitted[i])
	}
}
