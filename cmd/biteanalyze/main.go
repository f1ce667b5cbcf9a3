// Command biteanalyze runs the bite-force analysis headless and prints the
// report as text or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bite-tracer/internal/analysis"
	"bite-tracer/internal/calibration"
	"bite-tracer/internal/film"
	"bite-tracer/internal/logger"
	"bite-tracer/internal/report"
	"bite-tracer/pkg/geometry"
)

// output is the JSON document biteanalyze emits with -json.
type output struct {
	Aggregate *analysis.Report           `json:"aggregate"`
	Pixelwise *analysis.PixelwiseSummary `json:"pixelwise,omitempty"`
}

func main() {
	imagePath := flag.String("image", "", "Path to the photographed pressure film (TIFF, PNG, JPEG, or BMP)")
	aoiSpec := flag.String("aoi", "", "Area of interest as x,y,height,width (default: full image)")
	aorSpec := flag.String("aor", "", "Area of reference as x,y,height,width")
	forceTable := flag.String("force-table", "models/force_correction.json", "Force correction table (JSON)")
	weightTable := flag.String("weight-table", "", "Pixel weight correction table (JSON, enables pixelwise analysis)")
	threshold := flag.Float64("threshold", 0.3, "Intensity threshold")
	areaCorr := flag.Float64("area-corr", 1.0021, "Area correction factor")
	refForce := flag.Float64("ref-force", 50, "Reference bite force in Newton")
	maxForce := flag.Float64("max-force", 0, "Per-pixel force clip in Newton (0 = off)")
	asJSON := flag.Bool("json", false, "Emit the report as JSON")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	log := logger.NewConsole(logger.ParseLevel(*logLevel))

	if *imagePath == "" || *aorSpec == "" {
		fmt.Println("Usage: biteanalyze -image <path> -aor x,y,h,w [-aoi x,y,h,w] [flags]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open film image")
	}
	img, err := film.Decode(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to decode film image")
	}

	forceModel, pixelModel, err := loadModels(*forceTable, *weightTable)
	if err != nil {
		log.Fatal().Err(err).Msg("calibration failed")
	}

	params := analysis.DefaultParams().
		WithThreshold(*threshold).
		WithAreaCorrFactor(*areaCorr).
		WithReferenceForce(*refForce).
		WithMaxForce(*maxForce)

	session, err := analysis.NewSession(img, forceModel, pixelModel, params)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}
	session.SetLogger(log)

	if *aoiSpec != "" {
		origin, height, width, err := parseRegionSpec(*aoiSpec)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -aoi")
		}
		if err := session.SetAOI(origin, height, width); err != nil {
			log.Fatal().Err(err).Msg("failed to set area of interest")
		}
	}
	origin, height, width, err := parseRegionSpec(*aorSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -aor")
	}
	if err := session.SetAOR(origin, height, width); err != nil {
		log.Fatal().Err(err).Msg("failed to set area of reference")
	}

	result, err := session.RunAggregate()
	if err != nil {
		log.Fatal().Err(err).Msg("aggregate analysis failed")
	}

	out := output{Aggregate: result}
	if pixelModel != nil {
		pixelwise, err := session.RunPixelwise()
		if err != nil {
			log.Fatal().Err(err).Msg("pixelwise analysis failed")
		}
		out.Pixelwise = &pixelwise.Summary
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal().Err(err).Msg("failed to encode report")
		}
		return
	}

	fmt.Print(report.Render(result))
	if out.Pixelwise != nil {
		fmt.Print(report.RenderPixelwise(*out.Pixelwise))
	}
}

// loadModels fits the force correction model and, when a table is given,
// the pixel weight model.
func loadModels(forceTablePath, weightTablePath string) (*calibration.Polynomial, *calibration.Exponential, error) {
	forceTable, err := calibration.LoadForceCorrectionTable(forceTablePath)
	if err != nil {
		return nil, nil, err
	}
	forceModel, err := calibration.FitForceCorrection(forceTable)
	if err != nil {
		return nil, nil, err
	}

	if weightTablePath == "" {
		return forceModel, nil, nil
	}
	weightTable, err := calibration.LoadPixelWeightTable(weightTablePath)
	if err != nil {
		return nil, nil, err
	}
	pixelModel, err := calibration.FitPixelWeight(weightTable)
	if err != nil {
		return nil, nil, err
	}
	return forceModel, pixelModel, nil
}

// parseRegionSpec parses "x,y,height,width" into crop arguments.
func parseRegionSpec(spec string) (geometry.PointInt, int, int, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return geometry.PointInt{}, 0, 0, fmt.Errorf("expected x,y,height,width, got %q", spec)
	}
	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return geometry.PointInt{}, 0, 0, fmt.Errorf("expected x,y,height,width, got %q", spec)
		}
		vals[i] = v
	}
	return geometry.PointInt{X: vals[0], Y: vals[1]}, vals[2], vals[3], nil
}
