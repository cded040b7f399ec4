package ui

import "github.com/pterm/pterm"

const heatmapCell = "■"

// heatmapShades are the cell colours for intensity tiers 1-4, lightest to
// darkest.
var heatmapShades = [4]pterm.RGB{
	{R: 155, G: 233, B: 168},
	{R: 64, G: 196, B: 99},
	{R: 48, G: 161, B: 78},
	{R: 33, G: 110, B: 57},
}

// IntensityCell renders one heatmap cell for an intensity tier in 0-4.
func IntensityCell(tier int) string {
	if tier <= 0 {
		return pterm.Gray(heatmapCell)
	}

	if tier > len(heatmapShades) {
		tier = len(heatmapShades)
	}

	return heatmapShades[tier-1].Sprint(heatmapCell)
}
