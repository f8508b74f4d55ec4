package pages

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/routes"
)

// Pictures is the placeholder for the picture archive.
func Pictures() templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		w.Open("section", markup.A("class", "pictures"))
		w.Element("h1", "사진보관함", markup.A("class", "text-page-title"))
		w.Element("p", "준비 중입니다.", markup.A("class", "emptyState text-body"))
		w.Close("section")
	})
}

// NotFound is shown for unknown diaries and paths.
func NotFound(message string) templ.Component {
	return ErrorPage(http.StatusNotFound, message)
}

// ErrorPage shows status with message, or a default message for status.
func ErrorPage(status int, message string) templ.Component {
	return markup.Func(func(_ context.Context, w *markup.Writer) {
		if message == "" {
			message = defaultErrorMessage(status)
		}
		w.Open("section", markup.A("class", "notFound"))
		w.Element("h1", strconv.Itoa(status), markup.A("class", "text-page-title"))
		w.Element("p", message, markup.A("class", "emptyState text-body"))
		w.Element("a", "일기보관함으로 돌아가기", markup.A("href", routes.DiariesList.Path))
		w.Close("section")
	})
}

func defaultErrorMessage(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "페이지를 찾을 수 없습니다."
	case status < http.StatusInternalServerError:
		return "잘못된 요청입니다."
	default:
		return "일시적인 오류가 발생했습니다."
	}
}
