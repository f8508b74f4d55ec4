package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/components"
	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/routes"
)

// EmptyListMessage is shown when no diary matches.
const EmptyListMessage = "등록된 일기가 없습니다."

// ListProps feeds the list page.
type ListProps struct {
	State ListState
	Page  diary.Page
}

func filterOptions() []components.Option {
	opts := make([]components.Option, len(diary.FilterOptions))
	for i, o := range diary.FilterOptions {
		opts[i] = components.Option{Value: o.Value, Label: o.Label}
	}
	return opts
}

// DiaryList renders the search bar, the card grid and pagination.
func DiaryList(p ListProps) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		s := p.State

		w.Open("div", markup.A("class", "diaries"))
		gap(w, "gap")

		w.Open("form",
			markup.A("class", "searchSection"),
			markup.A("method", "get"),
			markup.A("action", routes.DiariesList.Path),
			markup.A("role", "search"))
		w.Open("div", markup.A("class", "searchContent"))
		w.Render(ctx, components.Selectbox(components.SelectboxProps{
			Options:    filterOptions(),
			Value:      s.Filter,
			Open:       s.FilterOpen,
			Name:       "filter",
			ToggleHref: s.WithFilterOpen(!s.FilterOpen).URL(),
			Class:      "filterSelect",
		}))
		// After the options so a clicked option is the first filter value.
		w.Open("input", markup.A("type", "hidden"), markup.A("name", "filter"), markup.A("value", s.Filter))
		w.Render(ctx, components.Searchbar(components.SearchbarProps{
			Value: s.Search,
			Class: "searchInput",
		}))
		w.Close("div")
		w.Render(ctx, components.Button(components.ButtonProps{
			Href:  s.WithModal(ModalNew).URL(),
			Icon:  components.IconPlus,
			Class: "writeButton",
			Attrs: templ.Attributes{"data-testid": "write-button"},
		}, markup.Text("일기쓰기")))
		w.Close("form")

		gap(w, "gap")

		w.Open("div", markup.A("class", "mainSection"))
		if len(p.Page.Diaries) == 0 {
			w.Element("p", EmptyListMessage, markup.A("class", "emptyState text-body"))
		} else {
			w.Open("div", markup.A("class", "diaryGrid"))
			for _, d := range p.Page.Diaries {
				card(ctx, w, d)
			}
			w.Close("div")
		}
		w.Close("div")

		gap(w, "gap")

		w.Open("div", markup.A("class", "paginationSection"))
		w.Render(ctx, components.Pagination(components.PaginationProps{
			Pager: p.Page.Pager,
			Href:  func(page int) string { return s.WithPage(page).URL() },
		}))
		w.Close("div")
		w.Close("div")
	})
}

func card(ctx context.Context, w *markup.Writer, d diary.Diary) {
	detail := routes.DiaryDetailURL(d.ID)

	w.Open("article", markup.A("class", "diaryCard"), markup.A("data-diary-id", strconv.Itoa(d.ID)))
	w.Open("div", markup.A("class", "cardImageContainer"))
	w.Open("a", markup.A("href", detail))
	w.Open("img",
		markup.A("class", "cardImage"),
		markup.A("src", d.ImageURL()),
		markup.A("alt", d.Emotion.Text()),
		markup.A("width", "274"),
		markup.A("height", "208"))
	w.Close("a")
	w.Open("form", markup.A("method", "post"), markup.A("action", detail+"/delete"))
	w.Open("button", markup.A("type", "submit"), markup.A("class", "closeButton"), markup.A("aria-label", "삭제"))
	w.Render(ctx, components.IconClose)
	w.Close("button")
	w.Close("form")
	w.Close("div")

	w.Open("div", markup.A("class", "cardContent"))
	w.Open("div", markup.A("class", "cardInfo"))
	w.Element("span", d.Emotion.Text(),
		markup.A("class", "emotionTag text-tag"),
		markup.A("data-emotion", d.Emotion.Slug()))
	w.Element("span", d.Date(), markup.A("class", "dateText text-caption"))
	w.Close("div")
	w.Open("a", markup.A("class", "cardTitle text-card-title"), markup.A("href", detail))
	w.Text(d.Title)
	w.Close("a")
	w.Close("div")
	w.Close("article")
}

func gap(w *markup.Writer, class string) {
	w.Open("div", markup.A("class", class))
	w.Close("div")
}
