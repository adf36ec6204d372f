package engine

// estimatePercent holds the advisory share of the raw RGB sample count that
// each algorithm can carry, in percent.
var estimatePercent = map[Algorithm]int{
	AlgorithmLSB: 25,
	AlgorithmPVD: 18,
	AlgorithmDWT: 12,
}

// Estimate returns an advisory payload budget in bytes for a width×height
// image: floor(width*height*3*ratio) with ratios lsb 0.25, pvd 0.18 and
// dwt 0.12.  Unknown algorithms use the lsb ratio.
//
// The figure is meant for UIs.  [Engine.Capacity] is what Embed enforces.
func Estimate(width, height int, alg Algorithm) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	pct, ok := estimatePercent[alg]
	if !ok {
		pct = estimatePercent[AlgorithmLSB]
	}
	return width * height * 3 * pct / 100
}

// Details describes an algorithm for display.
type Details struct {
	Algorithm   Algorithm
	Name        string
	FullName    string
	Capacity    string
	Security    string
	Speed       string
	Description string
}

var details = map[Algorithm]Details{
	AlgorithmLSB: {
		Algorithm:   AlgorithmLSB,
		Name:        "LSB",
		FullName:    "Least Significant Bit",
		Capacity:    "25%",
		Security:    "Basic",
		Speed:       "Fast",
		Description: "Simple and fast, replaces least significant bits of pixel data",
	},
	AlgorithmPVD: {
		Algorithm:   AlgorithmPVD,
		Name:        "PVD",
		FullName:    "Pixel Value Differencing",
		Capacity:    "15-20%",
		Security:    "Medium",
		Speed:       "Medium",
		Description: "Hides bits only in low-contrast pixels where changes are least visible",
	},
	AlgorithmDWT: {
		Algorithm:   AlgorithmDWT,
		Name:        "DWT",
		FullName:    "Discrete Wavelet Transform",
		Capacity:    "10-15%",
		Security:    "High",
		Speed:       "Slow",
		Description: "Embeds into block averages, approximating frequency-domain hiding",
	},
}

// Info returns display details for alg.  Unknown algorithms report the LSB
// details and false.
func Info(alg Algorithm) (Details, bool) {
	d, ok := details[alg]
	if !ok {
		return details[AlgorithmLSB], false
	}
	return d, true
}
