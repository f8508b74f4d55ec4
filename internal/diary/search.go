package diary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// normalize prepares text for matching: NFC so decomposed Hangul compares
// equal to precomposed input, then Unicode case folding.
func normalize(s string) string {
	// Casers keep state; a fresh one per call is safe for concurrent use.
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// matchesTitle reports whether the diary title contains term.
func matchesTitle(d Diary, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(normalize(d.Title), term)
}

// FilterOption is one choice in the list page emotion filter.
type FilterOption struct {
	Value string
	Label string
}

// FilterAll selects every emotion.
const FilterAll = "all"

// FilterOptions are the emotion filter choices in display order.
var FilterOptions = []FilterOption{
	{Value: FilterAll, Label: "전체"},
	{Value: Happy.Slug(), Label: "기쁨"},
	{Value: Sad.Slug(), Label: "슬픔"},
	{Value: Angry.Slug(), Label: "화남"},
	{Value: Surprise.Slug(), Label: "놀람"},
	{Value: Etc.Slug(), Label: "기타"},
}

// parseFilter maps a filter value to the emotion it selects. All and the
// empty string select everything.
func parseFilter(value string) (Emotion, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, FilterAll) {
		return "", true
	}
	return ParseEmotion(value)
}
