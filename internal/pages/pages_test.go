package pages

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/diary/internal/diary"
	tu "github.com/conneroisu/diary/internal/testutils"
)

func newStore(t *testing.T) *diary.MemoryStore {
	t.Helper()
	s, err := diary.NewMemoryStore(diary.DefaultFixture())
	require.NoError(t, err)
	return s
}

func TestParseListState(t *testing.T) {
	q, err := url.ParseQuery("filter=happy&q=%EC%97%AC%ED%96%89&page=3&filter_open=1&modal=new")
	require.NoError(t, err)

	s := ParseListState(q)
	assert.Equal(t, ListState{Filter: "happy", Search: "여행", Page: 3, FilterOpen: true, Modal: "new"}, s)

	def := ParseListState(url.Values{"page": {"-2"}})
	assert.Equal(t, ListState{Filter: diary.FilterAll, Page: 1}, def)
}

func TestListStateURL(t *testing.T) {
	assert.Equal(t, "/diaries", ListState{Filter: "all", Page: 1}.URL())

	s := ListState{Filter: "sad", Search: "비", Page: 2}
	assert.Equal(t, "/diaries?filter=sad&page=2&q=%EB%B9%84", s.URL())
	assert.Equal(t, "/diaries?filter=sad&filter_open=1&page=2&q=%EB%B9%84", s.WithFilterOpen(true).URL())
	assert.Equal(t, "/diaries?filter=sad&modal=new&page=2&q=%EB%B9%84", s.WithFilterOpen(true).WithModal(ModalNew).URL())
	assert.Equal(t, "/diaries?filter=sad&page=4&q=%EB%B9%84", s.WithModal(ModalNew).WithPage(4).URL())
}

func TestDiaryList(t *testing.T) {
	store := newStore(t)
	state := ListState{Filter: diary.FilterAll, Page: 1}
	page, err := store.List(context.Background(), state.Query(4, 5))
	require.NoError(t, err)

	doc, _ := tu.Render(t, context.Background(), DiaryList(ListProps{State: state, Page: page}))

	cards := tu.FindAll(doc, tu.ByClass("diaryCard"))
	require.Len(t, cards, 4)
	assert.Equal(t, "12", tu.AttrOf(cards[0], "data-diary-id"))

	tag := tu.First(t, cards[0], tu.ByClass("emotionTag"))
	assert.Equal(t, "happy", tu.AttrOf(tag, "data-emotion"))
	assert.Equal(t, "행복해요", tu.Text(tag))
	assert.Equal(t, "2024. 03. 12", tu.Text(tu.First(t, cards[0], tu.ByClass("dateText"))))
	assert.Equal(t, "/diaries/12", tu.AttrOf(tu.First(t, cards[0], tu.ByClass("cardTitle")), "href"))
	assert.Equal(t, "/images/emotion-happy-m.png", tu.AttrOf(tu.First(t, cards[0], tu.ByTag("img")), "src"))

	del := tu.First(t, cards[0], tu.ByTag("form"))
	assert.Equal(t, "/diaries/12/delete", tu.AttrOf(del, "action"))

	write := tu.First(t, doc, tu.ByAttr("data-testid", "write-button"))
	assert.Equal(t, "/diaries?modal=new", tu.AttrOf(write, "href"))
	assert.Equal(t, "일기쓰기", tu.Text(write))

	nav := tu.First(t, doc, tu.ByAttr("aria-label", "페이지네이션"))
	assert.Len(t, tu.FindAll(nav, tu.ByClass("pageButton")), 3)
	assert.Equal(t, "/diaries?page=2", tu.AttrOf(tu.First(t, nav, tu.ByAttr("aria-label", "페이지 2")), "href"))

	trigger := tu.First(t, doc, tu.ByAttr("role", "combobox"))
	assert.Equal(t, "전체", tu.Text(trigger))
	assert.Equal(t, "/diaries?filter_open=1", tu.AttrOf(trigger, "href"))

	search := tu.First(t, doc, tu.ByAttr("name", "q"))
	assert.Equal(t, "검색어를 입력해 주세요.", tu.AttrOf(search, "placeholder"))
}

func TestDiaryCardSanitizesImage(t *testing.T) {
	page := diary.Page{
		Diaries: []diary.Diary{{ID: 7, Emotion: diary.Happy, Title: "소풍", Image: "javascript:alert(1)"}},
		Total:   1,
	}

	doc, out := tu.Render(t, context.Background(), DiaryList(ListProps{State: ListState{Filter: diary.FilterAll, Page: 1}, Page: page}))

	img := tu.First(t, doc, tu.ByTag("img"))
	assert.Equal(t, "about:invalid#TemplFailedSanitizationURL", tu.AttrOf(img, "src"))
	assert.NotContains(t, out, "javascript:")
}

func TestDiaryListFilterOpenAndEmpty(t *testing.T) {
	store := newStore(t)
	state := ListState{Filter: "angry", Search: "없음", Page: 1, FilterOpen: true}
	page, err := store.List(context.Background(), state.Query(12, 5))
	require.NoError(t, err)

	doc, _ := tu.Render(t, context.Background(), DiaryList(ListProps{State: state, Page: page}))

	assert.Equal(t, EmptyListMessage, tu.Text(tu.First(t, doc, tu.ByClass("emptyState"))))
	assert.Empty(t, tu.FindAll(doc, tu.ByClass("diaryCard")))

	opts := tu.FindAll(doc, tu.ByAttr("role", "option"))
	require.Len(t, opts, 6)
	assert.Equal(t, "화남", tu.Text(opts[3]))
	assert.Equal(t, "true", tu.AttrOf(opts[3], "aria-selected"))

	trigger := tu.First(t, doc, tu.ByAttr("role", "combobox"))
	assert.Equal(t, "/diaries?filter=angry&q=%EC%97%86%EC%9D%8C", tu.AttrOf(trigger, "href"))

	hidden := tu.FindAll(doc, tu.ByAttr("type", "hidden"))
	require.Len(t, hidden, 1)
	assert.Equal(t, "angry", tu.AttrOf(hidden[0], "value"))
}

func TestDiaryDetail(t *testing.T) {
	store := newStore(t)
	entry, err := store.Get(context.Background(), 1)
	require.NoError(t, err)

	doc, _ := tu.Render(t, context.Background(), DiaryDetail(DetailProps{
		Entry:           entry,
		RetrospectValue: " ",
		RetrospectError: diary.MsgRetrospectRequired,
	}))

	assert.Equal(t, entry.Title, tu.Text(tu.First(t, doc, tu.ByTag("h1"))))
	assert.Equal(t, "슬퍼요", tu.Text(tu.First(t, doc, tu.ByClass("emotionText"))))
	assert.Equal(t, "/images/emotion-sad-s.png", tu.AttrOf(tu.First(t, doc, tu.ByTag("img")), "src"))
	assert.Equal(t, "작성", tu.Text(tu.First(t, doc, tu.ByClass("dateLabel"))))
	assert.Equal(t, entry.Content, tu.Text(tu.First(t, doc, tu.ByClass("contentText"))))
	assert.Equal(t, entry.Content, tu.AttrOf(tu.First(t, doc, tu.ByClass("copyButton")), "data-copy"))

	form := tu.First(t, doc, tu.ByClass("retrospectInput"))
	assert.Equal(t, "/diaries/1/retrospects", tu.AttrOf(form, "action"))
	in := tu.First(t, form, tu.ByTag("input"))
	assert.Equal(t, "회고를 남겨보세요.", tu.AttrOf(in, "placeholder"))
	assert.Contains(t, tu.Classes(in), "large")
	assert.Equal(t, diary.MsgRetrospectRequired, tu.Text(tu.First(t, form, tu.ByClass("errorMessage"))))

	items := tu.FindAll(doc, tu.ByClass("retrospectItem"))
	require.Len(t, items, 2)
	assert.Equal(t, "[2024. 09. 24]", tu.Text(tu.First(t, items[0], tu.ByClass("retrospectDate"))))
	assert.Len(t, tu.FindAll(doc, tu.ByClass("retrospectDivider")), 1)

	var labels []string
	for _, b := range tu.FindAll(tu.First(t, doc, tu.ByClass("detailFooter")), tu.ByTag("button")) {
		labels = append(labels, tu.Text(b))
	}
	assert.Equal(t, []string{"수정", "삭제"}, labels)
}

func TestDiaryNew(t *testing.T) {
	doc, _ := tu.Render(t, context.Background(), DiaryNew(NewProps{
		Values: diary.NewDiary{Emotion: "Angry", Title: "<제목>", Content: "오늘은"},
		Error:  diary.MsgAllFieldsRequired,
	}))

	form := tu.First(t, doc, tu.ByTag("form"))
	assert.Equal(t, "post", tu.AttrOf(form, "method"))
	assert.Equal(t, "/diaries", tu.AttrOf(form, "action"))
	assert.Equal(t, "일기 쓰기", tu.Text(tu.First(t, form, tu.ByTag("h1"))))
	assert.Equal(t, "오늘 기분은 어땠나요?", tu.Text(tu.First(t, form, tu.ByTag("legend"))))

	radios := tu.FindAll(form, tu.ByAttr("type", "radio"))
	require.Len(t, radios, 5)
	_, checked := tu.Attr(radios[2], "checked")
	assert.True(t, checked)
	assert.Equal(t, "Angry", tu.AttrOf(radios[2], "value"))

	title := tu.First(t, form, tu.ByAttr("name", "title"))
	assert.Equal(t, "<제목>", tu.AttrOf(title, "value"))
	assert.Equal(t, "제목을 입력합니다.", tu.AttrOf(title, "placeholder"))
	assert.Equal(t, "오늘은", tu.Text(tu.First(t, form, tu.ByTag("textarea"))))

	assert.Equal(t, diary.MsgAllFieldsRequired, tu.Text(tu.First(t, form, tu.ByClass("formError"))))
	assert.Equal(t, "/diaries", tu.AttrOf(tu.First(t, form, tu.ByClass("cancelButton")), "href"))
	assert.Equal(t, "등록하기", tu.Text(tu.First(t, form, tu.ByClass("submitButton"))))
}

func TestMiscPages(t *testing.T) {
	doc, _ := tu.Render(t, context.Background(), Pictures())
	assert.Equal(t, "사진보관함", tu.Text(tu.First(t, doc, tu.ByTag("h1"))))

	doc, _ = tu.Render(t, context.Background(), NotFound(""))
	assert.Contains(t, tu.Text(doc), "페이지를 찾을 수 없습니다.")
	doc, _ = tu.Render(t, context.Background(), NotFound("diary not found: 9"))
	assert.Contains(t, tu.Text(doc), "diary not found: 9")

	doc, _ = tu.Render(t, context.Background(), ErrorPage(400, ""))
	assert.Equal(t, "400", tu.Text(tu.First(t, doc, tu.ByTag("h1"))))
	assert.Contains(t, tu.Text(doc), "잘못된 요청입니다.")
	doc, _ = tu.Render(t, context.Background(), ErrorPage(500, ""))
	assert.Contains(t, tu.Text(doc), "일시적인 오류가 발생했습니다.")
}
