package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/components"
	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/routes"
)

// DetailProps feeds the detail page.
type DetailProps struct {
	Entry diary.Entry
	// RetrospectValue refills the input after a rejected submission.
	RetrospectValue string
	RetrospectError string
}

// RetrospectsPath is where the retrospect form posts for a diary.
func RetrospectsPath(id int) string {
	return routes.DiaryDetailURL(id) + "/retrospects"
}

// DiaryDetail renders one diary with its retrospects.
func DiaryDetail(p DetailProps) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		d := p.Entry.Diary

		w.Open("div", markup.A("class", "diaryDetail"))
		gap(w, "gapLarge")

		w.Open("div", markup.A("class", "detailTitle"))
		w.Element("h1", d.Title, markup.A("class", "titleText text-page-title"))
		w.Open("div", markup.A("class", "emotionDateSection"))
		w.Open("div", markup.A("class", "emotionArea"))
		w.Open("img",
			markup.A("src", "/images/"+d.Emotion.SmallImage()),
			markup.A("alt", d.Emotion.Text()),
			markup.A("width", "32"),
			markup.A("height", "32"))
		w.Element("span", d.Emotion.Text(),
			markup.A("class", "emotionText emotionTag text-tag"),
			markup.A("data-emotion", d.Emotion.Slug()))
		w.Close("div")
		w.Open("div", markup.A("class", "dateArea"))
		w.Element("span", d.Date(), markup.A("class", "dateText text-caption"))
		w.Element("span", "작성", markup.A("class", "dateLabel text-caption"))
		w.Close("div")
		w.Close("div")
		w.Close("div")

		gap(w, "gapMedium")

		w.Open("div", markup.A("class", "detailContent"))
		w.Open("div", markup.A("class", "contentArea"))
		w.Element("div", "내용", markup.A("class", "contentLabel text-label"))
		w.Element("div", d.Content, markup.A("class", "contentText text-body-regular"))
		w.Close("div")
		w.Open("div", markup.A("class", "copyArea"))
		w.Open("button",
			markup.A("type", "button"),
			markup.A("class", "copyButton"),
			markup.Keep("data-copy", d.Content),
			markup.A("onclick", "navigator.clipboard && navigator.clipboard.writeText(this.dataset.copy)"))
		w.Render(ctx, components.IconCopy)
		w.Element("span", "내용 복사", markup.A("class", "copyText text-caption"))
		w.Close("button")
		w.Close("div")
		w.Close("div")

		gap(w, "gapMedium")

		w.Open("div", markup.A("class", "detailFooter"))
		w.Render(ctx, components.Button(components.ButtonProps{Variant: components.Secondary, Class: "actionButton"}, markup.Text("수정")))
		w.Open("form", markup.A("method", "post"), markup.A("action", routes.DiaryDetailURL(d.ID)+"/delete"))
		w.Render(ctx, components.Button(components.ButtonProps{Variant: components.Secondary, Type: "submit", Class: "actionButton"}, markup.Text("삭제")))
		w.Close("form")
		w.Close("div")

		gap(w, "gapMedium")

		w.Open("form",
			markup.A("class", "retrospectInput"),
			markup.A("method", "post"),
			markup.A("action", RetrospectsPath(d.ID)))
		w.Element("div", "회고", markup.A("class", "retrospectLabel text-label"))
		w.Open("div", markup.A("class", "retrospectInputFrame"))
		w.Open("div", markup.A("class", "retrospectInputField"))
		w.Render(ctx, components.Input(components.InputProps{
			ID:           "retrospect-content",
			Name:         "content",
			Size:         components.Large,
			Value:        p.RetrospectValue,
			ErrorMessage: p.RetrospectError,
		}))
		w.Close("div")
		w.Render(ctx, components.Button(components.ButtonProps{Type: "submit", Class: "retrospectSubmitButton"}, markup.Text("입력")))
		w.Close("div")
		w.Close("form")

		gap(w, "gapSmall")

		w.Open("div", markup.A("class", "retrospectList"))
		for i, r := range p.Entry.Retrospects {
			w.Open("div", markup.A("class", "retrospectItem"), markup.A("data-retrospect-id", r.ID))
			w.Element("span", r.Content, markup.A("class", "retrospectContent text-body-regular"))
			w.Element("span", "["+r.Date()+"]", markup.A("class", "retrospectDate text-caption"))
			w.Close("div")
			if i < len(p.Entry.Retrospects)-1 {
				gap(w, "retrospectDivider")
			}
		}
		w.Close("div")
		w.Close("div")
	})
}
