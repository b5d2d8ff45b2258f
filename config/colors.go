package config

import "image/color"

// Palette used by the renderer and the start menu
var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Blue   = color.RGBA{64, 128, 255, 255}
	Green  = color.RGBA{46, 204, 113, 255}
	Red    = color.RGBA{231, 76, 60, 255}
	Purple = color.RGBA{155, 89, 182, 255}
	Orange = color.RGBA{230, 126, 34, 255}
	Yellow = color.RGBA{241, 196, 15, 255}

	MidnightBlue = color.RGBA{8, 20, 40, 255}
	LightBlue    = color.RGBA{52, 152, 219, 255}

	DarkGreen         = color.RGBA{39, 174, 96, 255}
	PlatformGray      = color.RGBA{108, 122, 137, 255}
	PlatformHighlight = color.RGBA{149, 165, 180, 255}

	UIBackground = color.RGBA{44, 62, 80, 255}
	UIText       = color.RGBA{236, 240, 241, 255}
	WarningRed   = color.RGBA{192, 57, 43, 255}
	SuccessGreen = color.RGBA{39, 174, 96, 255}
)

// PlayerColors is indexed by roster position
var PlayerColors = []color.RGBA{Blue, Red, Green}

// PlayerColor returns the color for a roster position, wrapping past the palette
func PlayerColor(index int) color.RGBA {
	if index < 0 {
		index = 0
	}
	return PlayerColors[index%len(PlayerColors)]
}
