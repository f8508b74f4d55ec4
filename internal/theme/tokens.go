// Package theme holds the design tokens every component is styled with:
// the color palette, the light and dark semantic sets derived from it,
// typography scales and the stylesheet that exposes them as CSS variables.
package theme

// Palette is the raw color foundation. Semantic tokens refer to it.
var Palette = struct {
	Blue     map[int]string
	Gray     map[string]string
	Red      map[int]string
	Green    map[int]string
	Yellow   map[int]string
	CoolGray map[int]string
	Gradient map[string]string
}{
	Blue: map[int]string{
		5: "#F0F7FF", 10: "#DBEEFF", 20: "#BDDBFF", 30: "#93BEFF", 40: "#6DA5FA",
		50: "#497CFF", 60: "#3A5CF3", 70: "#274AE1", 80: "#1530A6", 90: "#0B2184",
	},
	Gray: map[string]string{
		"white": "#FFFFFF", "5": "#F2F2F2", "10": "#E4E4E4", "20": "#D4D3D3",
		"30": "#C7C7C7", "40": "#ABABAB", "50": "#919191", "60": "#777777",
		"70": "#5F5F5F", "80": "#333333", "90": "#1C1C1C", "black": "#000000",
	},
	Red: map[int]string{
		5: "#FDD7DC", 10: "#F797A4", 20: "#F4677A", 30: "#F03851",
		40: "#E4112E", 50: "#B40E24", 60: "#850A1B",
	},
	Green: map[int]string{
		5: "#D3F3E0", 10: "#92E6B9", 20: "#15D66F", 30: "#12B75F",
		40: "#109C51", 50: "#0E723C", 60: "#084424",
	},
	Yellow: map[int]string{
		5: "#FFE499", 10: "#FFD666", 20: "#FFC933", 30: "#FFB300",
		40: "#EBA500", 50: "#D69600", 60: "#B27D00",
	},
	CoolGray: map[int]string{
		1: "#F8F8FA", 5: "#F6F6F9", 10: "#EDEEF2", 20: "#DDDFE5",
		30: "#D2D4DD", 40: "#C7C9D5", 50: "#BBBECD", 60: "#B0B3C4",
	},
	Gradient: map[string]string{
		"primary":  "linear-gradient(135deg, #6DA5FA 0%, #92EAF5 100%)",
		"skeleton": "linear-gradient(90deg, transparent 0%, rgba(255, 255, 255, 0.6) 48.5%, transparent 100%)",
	},
}

// Semantic groups the role-based tokens for one mode.
type Semantic struct {
	System     SystemColors
	Text       TextColors
	Background BackgroundColors
	Border     BorderColors
	State      StateColors
}

type SystemColors struct {
	Primary, Secondary, Success, Error, Warning string
}

type TextColors struct {
	Primary, Secondary, Tertiary, Inverse, Disabled string
}

type BackgroundColors struct {
	Primary, Secondary, Tertiary, Inverse, Overlay string
}

type BorderColors struct {
	Primary, Secondary, Focus, Error, Success string
}

type StateColors struct {
	Hover, Active, Disabled, Selected string
}

// Light is the default semantic token set.
var Light = Semantic{
	System: SystemColors{
		Primary:   Palette.Blue[40],
		Secondary: Palette.Blue[60],
		Success:   Palette.Green[30],
		Error:     Palette.Red[30],
		Warning:   Palette.Yellow[30],
	},
	Text: TextColors{
		Primary:   Palette.Gray["black"],
		Secondary: Palette.Gray["60"],
		Tertiary:  Palette.Gray["40"],
		Inverse:   Palette.Gray["white"],
		Disabled:  Palette.Gray["30"],
	},
	Background: BackgroundColors{
		Primary:   Palette.Gray["white"],
		Secondary: Palette.Gray["5"],
		Tertiary:  Palette.Gray["10"],
		Inverse:   Palette.Gray["black"],
		Overlay:   "rgba(0, 0, 0, 0.5)",
	},
	Border: BorderColors{
		Primary:   Palette.Gray["20"],
		Secondary: Palette.Gray["10"],
		Focus:     Palette.Blue[40],
		Error:     Palette.Red[30],
		Success:   Palette.Green[30],
	},
	State: StateColors{
		Hover:    Palette.Gray["5"],
		Active:   Palette.Gray["10"],
		Disabled: Palette.Gray["20"],
		Selected: Palette.Blue[5],
	},
}

// Dark is the semantic token set used in dark mode.
var Dark = Semantic{
	System: SystemColors{
		Primary:   Palette.Blue[50],
		Secondary: Palette.Blue[40],
		Success:   Palette.Green[20],
		Error:     Palette.Red[20],
		Warning:   Palette.Yellow[20],
	},
	Text: TextColors{
		Primary:   Palette.Gray["white"],
		Secondary: Palette.Gray["30"],
		Tertiary:  Palette.Gray["50"],
		Inverse:   Palette.Gray["black"],
		Disabled:  Palette.Gray["60"],
	},
	Background: BackgroundColors{
		Primary:   Palette.Gray["black"],
		Secondary: Palette.Gray["90"],
		Tertiary:  Palette.Gray["80"],
		Inverse:   Palette.Gray["white"],
		Overlay:   "rgba(255, 255, 255, 0.1)",
	},
	Border: BorderColors{
		Primary:   Palette.Gray["70"],
		Secondary: Palette.Gray["80"],
		Focus:     Palette.Blue[50],
		Error:     Palette.Red[20],
		Success:   Palette.Green[20],
	},
	State: StateColors{
		Hover:    Palette.Gray["80"],
		Active:   Palette.Gray["70"],
		Disabled: Palette.Gray["80"],
		Selected: Palette.Blue[90],
	},
}

// Var is one CSS custom property.
type Var struct {
	Name  string
	Value string
}

// Vars flattens a semantic set into CSS custom properties in a stable order.
func (s Semantic) Vars() []Var {
	return []Var{
		{"--color-primary", s.System.Primary},
		{"--color-secondary", s.System.Secondary},
		{"--color-success", s.System.Success},
		{"--color-error", s.System.Error},
		{"--color-warning", s.System.Warning},

		{"--color-text-primary", s.Text.Primary},
		{"--color-text-secondary", s.Text.Secondary},
		{"--color-text-tertiary", s.Text.Tertiary},
		{"--color-text-inverse", s.Text.Inverse},
		{"--color-text-disabled", s.Text.Disabled},

		{"--color-bg-primary", s.Background.Primary},
		{"--color-bg-secondary", s.Background.Secondary},
		{"--color-bg-tertiary", s.Background.Tertiary},
		{"--color-bg-inverse", s.Background.Inverse},
		{"--color-bg-overlay", s.Background.Overlay},

		{"--color-border-primary", s.Border.Primary},
		{"--color-border-secondary", s.Border.Secondary},
		{"--color-border-focus", s.Border.Focus},
		{"--color-border-error", s.Border.Error},
		{"--color-border-success", s.Border.Success},

		{"--color-state-hover", s.State.Hover},
		{"--color-state-active", s.State.Active},
		{"--color-state-disabled", s.State.Disabled},
		{"--color-state-selected", s.State.Selected},

		{"--gradient-primary", Palette.Gradient["primary"]},
		{"--gradient-skeleton", Palette.Gradient["skeleton"]},
	}
}
