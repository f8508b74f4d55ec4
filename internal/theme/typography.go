package theme

import "fmt"

// Device selects the mobile or desktop scale.
type Device string

const (
	Mobile  Device = "mobile"
	Desktop Device = "desktop"
)

// FontWeights maps weight names to CSS numeric weights.
var FontWeights = map[string]int{
	"regular":   400,
	"medium":    500,
	"semibold":  600,
	"bold":      700,
	"extrabold": 800,
}

// FontFamilies maps family names to CSS font stacks.
var FontFamilies = map[string]string{
	"pretendard": "Pretendard, sans-serif",
	"suit":       "SUIT Variable, sans-serif",
}

// TypographyStyle is one text style at one device size.
type TypographyStyle struct {
	FontFamily string
	FontWeight string
	FontSize   int
	LineHeight int
}

// Responsive pairs the mobile and desktop variant of a style.
type Responsive struct {
	Mobile  TypographyStyle
	Desktop TypographyStyle
}

// At returns the variant for device.
func (r Responsive) At(d Device) TypographyStyle {
	if d == Mobile {
		return r.Mobile
	}
	return r.Desktop
}

func ko(weight string, mSize, mLine, dSize, dLine int) Responsive {
	return Responsive{
		Mobile:  TypographyStyle{"pretendard", weight, mSize, mLine},
		Desktop: TypographyStyle{"pretendard", weight, dSize, dLine},
	}
}

func en(base Responsive) Responsive {
	base.Mobile.FontFamily = "suit"
	base.Desktop.FontFamily = "suit"
	return base
}

// DefaultTypography is returned when a lookup misses.
var DefaultTypography = TypographyStyle{"pretendard", "regular", 16, 24}

// Typography scales by category, then variant.
var Typography = map[string]map[string]Responsive{
	"web_headline": {
		"headline01": ko("semibold", 36, 48, 48, 60),
		"headline02": ko("semibold", 28, 36, 36, 48),
		"headline03": ko("semibold", 22, 28, 28, 36),
	},
	"headline": {
		"headline01": ko("bold", 20, 28, 24, 32),
		"headline02": ko("extrabold", 18, 26, 22, 30),
		"headline03": ko("bold", 16, 24, 20, 28),
	},
	"title": {
		"title01":    ko("bold", 16, 22, 18, 24),
		"title02":    ko("bold", 14, 20, 16, 22),
		"title03":    ko("bold", 12, 18, 14, 20),
		"subtitle01": ko("semibold", 12, 18, 14, 22),
		"subtitle02": ko("semibold", 10, 16, 12, 18),
	},
	"body": {
		"body01":         ko("medium", 14, 22, 16, 24),
		"body02_m":       ko("medium", 12, 18, 14, 22),
		"body03":         ko("medium", 10, 16, 12, 18),
		"body01_regular": ko("regular", 14, 20, 16, 22),
		"body02_s":       ko("regular", 12, 18, 14, 20),
		"body03_regular": ko("regular", 10, 14, 12, 16),
	},
	"caption": {
		"caption01":   ko("semibold", 10, 12, 12, 14),
		"caption02_m": ko("semibold", 8, 10, 10, 12),
		"caption02_s": ko("medium", 8, 10, 10, 12),
		"caption03":   ko("semibold", 6, 8, 8, 10),
	},
}

func init() {
	Typography["en"] = map[string]Responsive{
		"en_headline01": en(Typography["web_headline"]["headline01"]),
		"en_headline02": en(Typography["web_headline"]["headline02"]),
		"en_body01":     en(Typography["body"]["body01"]),
		"en_body02":     en(Typography["body"]["body02_m"]),
	}
}

// LookupTypography returns the style for category/variant at device. When
// the style does not exist it returns DefaultTypography and false.
func LookupTypography(category, variant string, device Device) (TypographyStyle, bool) {
	styles, ok := Typography[category]
	if !ok {
		return DefaultTypography, false
	}
	style, ok := styles[variant]
	if !ok {
		return DefaultTypography, false
	}
	return style.At(device), true
}

// TypographyVar builds the CSS variable name for one property of a style.
// property is one of family, weight, size or lineHeight.
func TypographyVar(category, variant, property string, device Device) string {
	if device == "" {
		device = Desktop
	}
	return fmt.Sprintf("--typography-%s-%s-%s-%s", category, variant, property, device)
}
