package config

import "image/color"

// DisplayConfig contains window values.
type DisplayConfig struct {
	Title      string
	ClearColor color.RGBA
}

// UIConfig contains HUD and overlay values.
type UIConfig struct {
	HUDFontSize    float64
	TitleFontSize  float64
	HUDTextColor   color.RGBA
	HUDMargin      float64
	BannerSeconds  float32 // fade-out time of the level title
	BannerHoldTime float32 // time the title stays fully visible first

	// PlayerTints multiplies each robot's sprite, indexed by player.
	PlayerTints []color.RGBA

	// Debug overlay
	CollisionBoxColor color.RGBA
	FeetProbeColor    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw collision boxes and feet probes
}

// Global configuration instances
var Display DisplayConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	Display = DisplayConfig{
		Title:      "Robot!",
		ClearColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	UI = UIConfig{
		HUDFontSize:    14,
		TitleFontSize:  40,
		HUDTextColor:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HUDMargin:      8,
		BannerSeconds:  1.5,
		BannerHoldTime: 1,

		PlayerTints: []color.RGBA{
			{R: 255, G: 255, B: 255, A: 255},
			{R: 255, G: 190, B: 150, A: 255},
			{R: 170, G: 255, B: 170, A: 255},
			{R: 190, G: 190, B: 255, A: 255},
		},

		CollisionBoxColor: color.RGBA{R: 255, G: 255, B: 0, A: 255},
		FeetProbeColor:    color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags and saved settings)
	Debug = DebugConfig{
		Overlay: false,
	}
}
