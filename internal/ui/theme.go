package ui

import "strings"

// Theme bundles palette and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Index                                  string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Index: fgYellow,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	}
}

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Index: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		// empty palette: C leaves text untouched
		current = Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
