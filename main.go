// Package main provides the entry point for the Bite Tracer application.
package main

import (
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
	"bite-tracer/internal/version"
	"bite-tracer/pkg/geometry"
	"bite-tracer/ui/viewer"
)

func main() {
	imagePath := flag.String("image", "", "Path to the photographed pressure film")
	aoiSpec := flag.String("aoi", "", "Area of interest as x,y,height,width (default: full image)")
	aorSpec := flag.String("aor", "", "Area of reference as x,y,height,width")
	forceTable := flag.String("force-table", "models/force_correction.json", "Force correction table (JSON)")
	weightTable := flag.String("weight-table", "", "Pixel weight correction table (JSON, enables pixelwise analysis)")
	threshold := flag.Float64("threshold", 0.3, "Intensity threshold")
	areaCorr := flag.Float64("area-corr", 1.0021, "Area correction factor")
	refForce := flag.Float64("ref-force", 50, "Reference bite force in Newton")
	maxForce := flag.Float64("max-force", 0, "Per-pixel force clip in Newton (0 = off)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := logger.NewConsole(logger.ParseLevel(*logLevel))
	log.Info().Str("version", version.Version).Msg("bite-tracer starting")

	if *imagePath == "" {
		fmt.Println("Usage: bite-tracer -image <path> -aor x,y,h,w [-aoi x,y,h,w] [flags]")
		os.Exit(1)
	}

	img, err := film.ReadFile(*imagePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load film image")
	}
	log.Info().Str("path", *imagePath).Int("width", img.Width).Int("height", img.Height).Msg("film loaded")

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

	if err := configureRegions(session, *aoiSpec, *aorSpec); err != nil {
		log.Fatal().Err(err).Msg("failed to configure regions")
	}

	result, err := session.RunAggregate()
	if err != nil {
		log.Fatal().Err(err).Msg("aggregate analysis failed")
	}
	text := report.Render(result)

	if pixelModel != nil {
		pixelwise, err := session.RunPixelwise()
		if err != nil {
			log.Fatal().Err(err).Msg("pixelwise analysis failed")
		}
		text += report.RenderPixelwise(pixelwise.Summary)
	}

	fmt.Print(text)
	viewer.Show(session, text)
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

// configureRegions applies the optional -aoi and required-for-analysis
// -aor crop specifications to the session.
func configureRegions(session *analysis.Session, aoiSpec, aorSpec string) error {
	if aoiSpec != "" {
		origin, height, width, err := parseRegionSpec(aoiSpec)
		if err != nil {
			return fmt.Errorf("invalid -aoi: %w", err)
		}
		if err := session.SetAOI(origin, height, width); err != nil {
			return err
		}
	}
	if aorSpec != "" {
		origin, height, width, err := parseRegionSpec(aorSpec)
		if err != nil {
			return fmt.Errorf("invalid -aor: %w", err)
		}
		if err := session.SetAOR(origin, height, width); err != nil {
			return err
		}
	}
	return nil
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
