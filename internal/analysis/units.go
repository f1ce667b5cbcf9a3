package analysis

const (
	// ScanDPI is the resolution the pressure films are scanned at.
	ScanDPI = 800.0

	// MMPerInch converts the scanner's inch-based resolution to millimeters.
	MMPerInch = 25.4
)

// AreaMM2 converts a pixel count to a physical area in mm², assuming square
// pixels at the scanning resolution. The empirical correction factor
// compensates lens and perspective distortion of the photographed film.
func AreaMM2(areaPixels, areaCorrFactor float64) float64 {
	mmPerPixel := MMPerInch / ScanDPI
	return mmPerPixel * mmPerPixel * areaPixels / areaCorrFactor
}

// Pressure converts force over area to MPa (N/mm²). A zero area fails with
// ErrZeroArea rather than returning infinity.
func Pressure(forceN, areaMM2 float64) (float64, error) {
	if areaMM2 == 0 {
		return 0, ErrZeroArea
	}
	return forceN / areaMM2, nil
}
