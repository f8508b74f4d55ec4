package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmotionAttributes(t *testing.T) {
	tests := []struct {
		emotion Emotion
		text    string
		color   string
		medium  string
	}{
		{Happy, "행복해요", "#850A1B", "emotion-happy-m.png"},
		{Sad, "슬퍼요", "#3A5CF3", "emotion-sad-m.png"},
		{Angry, "화나요", "#777777", "emotion-angry-m.png"},
		{Surprise, "놀랐어요", "#B27D00", "emotion-surprise-m.png"},
		{Etc, "기타", "#084424", "emotion-etc-m.png"},
	}

	for _, tt := range tests {
		t.Run(string(tt.emotion), func(t *testing.T) {
			assert.True(t, tt.emotion.Valid())
			assert.Equal(t, tt.text, tt.emotion.Text())
			assert.Equal(t, tt.color, tt.emotion.Color())
			assert.Equal(t, tt.medium, tt.emotion.MediumImage())
			assert.Equal(t, "emotion-"+tt.emotion.Slug()+"-s.png", tt.emotion.SmallImage())
		})
	}
}

func TestParseEmotion(t *testing.T) {
	e, ok := ParseEmotion(" surprise ")
	require.True(t, ok)
	assert.Equal(t, Surprise, e)

	_, ok = ParseEmotion("bored")
	assert.False(t, ok)
	assert.False(t, Emotion("bored").Valid())
}

func TestFilterOptions(t *testing.T) {
	labels := make([]string, len(FilterOptions))
	for i, o := range FilterOptions {
		labels[i] = o.Label
	}
	assert.Equal(t, []string{"전체", "기쁨", "슬픔", "화남", "놀람", "기타"}, labels)

	for _, o := range FilterOptions {
		_, ok := parseFilter(o.Value)
		assert.True(t, ok, o.Value)
	}
}

func TestDateFormat(t *testing.T) {
	d := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024. 03. 12", FormatDate(d))

	parsed, err := ParseDate("2024. 07. 12")
	require.NoError(t, err)
	assert.Equal(t, time.July, parsed.Month())
}
