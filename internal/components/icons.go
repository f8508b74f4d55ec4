package components

import "github.com/a-h/templ"

func svgIcon(path string) templ.Component {
	return templ.Raw(`<svg width="24" height="24" viewBox="0 0 24 24" fill="none" xmlns="http://www.w3.org/2000/svg" aria-hidden="true">` + path + `</svg>`)
}

func strokePath(d string) string {
	return `<path d="` + d + `" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`
}

// Icons shared by components and pages.
var (
	IconPlus    = svgIcon(strokePath("M12 5V19M5 12H19"))
	IconClose   = svgIcon(strokePath("M18 6L6 18M6 6l12 12"))
	IconArrowDn = svgIcon(strokePath("M7 10L12 15L17 10"))
	IconPrev    = svgIcon(strokePath("M15 18L9 12L15 6"))
	IconNext    = svgIcon(strokePath("M9 6L15 12L9 18"))
	IconSearch  = svgIcon(`<path d="M15.5 14h-.79l-.28-.27A6.471 6.471 0 0 0 16 9.5 6.5 6.5 0 1 0 9.5 16c1.61 0 3.09-.59 4.23-1.57l.27.28v.79l5 4.99L20.49 19l-4.99-5zm-6 0C7.01 14 5 11.99 5 9.5S7.01 5 9.5 5 14 7.01 14 9.5 11.99 14 9.5 14z" fill="currentColor"/>`)
	IconCopy    = svgIcon(strokePath("M8 8h10v12H8zM6 16H4V4h12v2"))
)
