package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/components"
	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/routes"
)

// NewProps feeds the new-diary form.
type NewProps struct {
	Values diary.NewDiary
	// Error is shown above the buttons after a rejected submission.
	Error string
	// CloseHref is where 닫기 leads.
	CloseHref string
}

// DiaryNew renders the new-diary form. It posts to the list path.
func DiaryNew(p NewProps) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		closeHref := p.CloseHref
		if closeHref == "" {
			closeHref = routes.DiariesList.Path
		}
		selected, _ := diary.ParseEmotion(p.Values.Emotion)

		w.Open("form",
			markup.A("class", "newDiary"),
			markup.A("method", "post"),
			markup.A("action", routes.DiariesList.Path),
			markup.A("data-testid", "diary-new-form"))

		w.Open("div", markup.A("class", "header"))
		w.Element("h1", "일기 쓰기", markup.A("class", "headerTitle text-page-title"))
		w.Close("div")

		w.Open("fieldset", markup.A("class", "emotionBox"))
		w.Element("legend", "오늘 기분은 어땠나요?", markup.A("class", "emotionQuestion text-label"))
		w.Open("div", markup.A("class", "emotionRadioGroup"))
		for _, e := range diary.Emotions {
			w.Open("label", markup.A("class", "emotionRadioItem"))
			w.Open("input",
				markup.A("type", "radio"),
				markup.A("name", "emotion"),
				markup.A("value", string(e)),
				markup.A("class", "emotionRadioInput"),
				markup.Flag("checked", e == selected))
			w.Element("span", e.Text(), markup.A("class", "emotionRadioText text-body"))
			w.Close("label")
		}
		w.Close("div")
		w.Close("fieldset")

		w.Open("div", markup.A("class", "inputTitle"))
		w.Render(ctx, components.Input(components.InputProps{
			ID:          "diary-title",
			Name:        "title",
			Label:       "제목",
			Placeholder: "제목을 입력합니다.",
			Value:       p.Values.Title,
		}))
		w.Close("div")

		w.Open("div", markup.A("class", "inputContent"))
		w.Element("label", "내용", markup.A("for", "diary-content"), markup.A("class", "contentLabel text-label"))
		w.Element("textarea", p.Values.Content,
			markup.A("id", "diary-content"),
			markup.A("name", "content"),
			markup.A("placeholder", "내용을 입력합니다."),
			markup.A("class", "contentTextarea"))
		w.Close("div")

		if p.Error != "" {
			w.Element("p", p.Error, markup.A("class", "formError"), markup.A("role", "alert"))
		}

		w.Open("div", markup.A("class", "formFooter"))
		w.Render(ctx, components.Button(components.ButtonProps{
			Href:    closeHref,
			Variant: components.Secondary,
			Size:    components.Large,
			Class:   "cancelButton",
		}, markup.Text("닫기")))
		w.Render(ctx, components.Button(components.ButtonProps{
			Type:  "submit",
			Size:  components.Large,
			Class: "submitButton",
		}, markup.Text("등록하기")))
		w.Close("div")
		w.Close("form")
	})
}
