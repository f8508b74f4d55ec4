package theme

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/conneroisu/diary/internal/logging"
)

//go:embed components.css
var componentsCSS string

// TextRole binds a component text class to a typography token.
type TextRole struct {
	Class    string
	Category string
	Variant  string
}

// TextRoles are the typography classes components rely on.
var TextRoles = []TextRole{
	{"text-logo", "headline", "headline02"},
	{"text-page-title", "web_headline", "headline03"},
	{"text-card-title", "title", "title01"},
	{"text-label", "title", "subtitle01"},
	{"text-body", "body", "body01"},
	{"text-body-regular", "body", "body01_regular"},
	{"text-caption", "body", "body02_s"},
	{"text-tag", "title", "subtitle02"},
	{"text-footer-title", "headline", "headline03"},
	{"text-footer-info", "caption", "caption01"},
}

// ResolveTypography is LookupTypography that logs a warning on a miss.
func ResolveTypography(ctx context.Context, logger logging.Logger, category, variant string, device Device) TypographyStyle {
	style, ok := LookupTypography(category, variant, device)
	if !ok && logger != nil {
		logger.Warn(ctx, nil, "Typography style not found",
			"category", category,
			"variant", variant,
			"device", string(device))
	}
	return style
}

// Stylesheet renders the token variables for both modes, typography
// variables and classes, and the component rules.
func Stylesheet(ctx context.Context, logger logging.Logger) string {
	if logger != nil {
		op := logging.StartOperation(logger, "generate_stylesheet")
		defer op.End(ctx)
	}

	var b strings.Builder

	b.WriteString(":root {\n")
	writeVars(&b, Light.Vars())
	writeTypographyVars(&b)
	b.WriteString("}\n\n")

	b.WriteString("[data-theme=\"dark\"] {\n")
	writeVars(&b, Dark.Vars())
	b.WriteString("}\n\n")

	writeTextRoles(ctx, &b, logger, Desktop)
	b.WriteString("@media (max-width: 767px) {\n")
	writeTextRoles(ctx, &b, logger, Mobile)
	b.WriteString("}\n\n")

	b.WriteString(componentsCSS)
	return b.String()
}

func writeVars(b *strings.Builder, vars []Var) {
	for _, v := range vars {
		fmt.Fprintf(b, "  %s: %s;\n", v.Name, v.Value)
	}
}

func writeTypographyVars(b *strings.Builder) {
	categories := make([]string, 0, len(Typography))
	for c := range Typography {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		variants := make([]string, 0, len(Typography[category]))
		for v := range Typography[category] {
			variants = append(variants, v)
		}
		sort.Strings(variants)

		for _, variant := range variants {
			for _, device := range []Device{Mobile, Desktop} {
				s := Typography[category][variant].At(device)
				fmt.Fprintf(b, "  %s: %s;\n", TypographyVar(category, variant, "family", device), FontFamilies[s.FontFamily])
				fmt.Fprintf(b, "  %s: %d;\n", TypographyVar(category, variant, "weight", device), FontWeights[s.FontWeight])
				fmt.Fprintf(b, "  %s: %dpx;\n", TypographyVar(category, variant, "size", device), s.FontSize)
				fmt.Fprintf(b, "  %s: %dpx;\n", TypographyVar(category, variant, "lineHeight", device), s.LineHeight)
			}
		}
	}
}

func writeTextRoles(ctx context.Context, b *strings.Builder, logger logging.Logger, device Device) {
	for _, role := range TextRoles {
		s := ResolveTypography(ctx, logger, role.Category, role.Variant, device)
		fmt.Fprintf(b, ".%s { font-family: %s; font-weight: %d; font-size: %dpx; line-height: %dpx; }\n",
			role.Class, FontFamilies[s.FontFamily], FontWeights[s.FontWeight], s.FontSize, s.LineHeight)
	}
}
