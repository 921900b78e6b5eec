package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Product colors
var (
	ColorSuccess = color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff} // #059669
	ColorError   = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff} // #dc2626
	ColorPrimary = color.RGBA{R: 0x23, G: 0x83, B: 0xe2, A: 0xff} // #2383e2
)

// CompactTheme defines a compact theme for the UI with reduced padding and the product palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 25, G: 25, B: 25, A: 255}
		}
		return color.RGBA{R: 247, G: 247, B: 245, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 6
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
