package diary

import (
	"strings"

	"github.com/conneroisu/diary/internal/theme"
)

// Emotion is the mood a diary entry is tagged with.
type Emotion string

const (
	Happy    Emotion = "Happy"
	Sad      Emotion = "Sad"
	Angry    Emotion = "Angry"
	Surprise Emotion = "Surprise"
	Etc      Emotion = "Etc"
)

// Emotions lists every emotion in display order.
var Emotions = []Emotion{Happy, Sad, Angry, Surprise, Etc}

var emotionText = map[Emotion]string{
	Happy:    "행복해요",
	Sad:      "슬퍼요",
	Angry:    "화나요",
	Surprise: "놀랐어요",
	Etc:      "기타",
}

var emotionColor = map[Emotion]string{
	Happy:    theme.Palette.Red[60],
	Sad:      theme.Palette.Blue[60],
	Angry:    theme.Palette.Gray["60"],
	Surprise: theme.Palette.Yellow[60],
	Etc:      theme.Palette.Green[60],
}

// ParseEmotion accepts an emotion name in any case.
func ParseEmotion(s string) (Emotion, bool) {
	for _, e := range Emotions {
		if strings.EqualFold(string(e), strings.TrimSpace(s)) {
			return e, true
		}
	}
	return "", false
}

// Valid reports whether e is one of the known emotions.
func (e Emotion) Valid() bool {
	_, ok := emotionText[e]
	return ok
}

// Text is the Korean label shown next to the emotion.
func (e Emotion) Text() string { return emotionText[e] }

// Color is the tag color for the emotion.
func (e Emotion) Color() string { return emotionColor[e] }

// Slug is the lowercase form used in filters, data attributes and image names.
func (e Emotion) Slug() string { return strings.ToLower(string(e)) }

// MediumImage is the card image file name.
func (e Emotion) MediumImage() string { return "emotion-" + e.Slug() + "-m.png" }

// SmallImage is the icon file name.
func (e Emotion) SmallImage() string { return "emotion-" + e.Slug() + "-s.png" }
