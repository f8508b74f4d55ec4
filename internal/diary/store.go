package diary

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/pagination"
)

// DefaultPageSize is how many cards the list page shows.
const DefaultPageSize = 12

// Query selects a page of diaries.
type Query struct {
	Filter    string
	Search    string
	Page      int
	PageSize  int
	PageRange int
}

// Page is one page of list results.
type Page struct {
	Diaries []Diary
	// Total is the number of diaries matching the filter and search.
	Total int
	Pager *pagination.Pager
	Query Query
}

// Entry is a diary with its retrospects, as shown on the detail page.
type Entry struct {
	Diary
	Retrospects []Retrospect
}

// Store is the diary data source the pages read from.
type Store interface {
	List(ctx context.Context, q Query) (Page, error)
	Get(ctx context.Context, id int) (Entry, error)
	Create(ctx context.Context, in NewDiary) (Diary, error)
	AddRetrospect(ctx context.Context, id int, content string) (Retrospect, error)
	Delete(ctx context.Context, id int) error
	Reload(ctx context.Context, data []byte) error
}

// MemoryStore keeps diaries in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	diaries     map[int]Diary
	retrospects map[int][]Retrospect
	nextID      int
	now         func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore builds a store seeded from fixture data.
func NewMemoryStore(data []byte) (*MemoryStore, error) {
	s := &MemoryStore{now: time.Now}
	if err := s.Reload(context.Background(), data); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns the diaries matching q, newest first, sliced to the
// requested page. A page past the end is clamped to the last page.
func (s *MemoryStore) List(ctx context.Context, q Query) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	emotion, ok := parseFilter(q.Filter)
	if !ok {
		return Page{}, errors.ErrInvalidArgument("filter", q.Filter, "unknown emotion filter")
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageRange <= 0 {
		q.PageRange = pagination.DefaultPageRange
	}
	term := normalize(q.Search)

	s.mu.RLock()
	matched := make([]Diary, 0, len(s.diaries))
	for _, d := range s.diaries {
		if emotion != "" && d.Emotion != emotion {
			continue
		}
		if !matchesTitle(d, term) {
			continue
		}
		matched = append(matched, d)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := pagination.TotalPages(len(matched), q.PageSize)
	q.Page = pagination.Clamp(q.Page, total)

	pager, err := pagination.NewPager(q.Page, total, q.PageRange)
	if err != nil {
		return Page{}, err
	}

	lo, hi := pagination.Bounds(q.Page, q.PageSize, len(matched))
	return Page{
		Diaries: matched[lo:hi],
		Total:   len(matched),
		Pager:   pager,
		Query:   q,
	}, nil
}

// Get returns a diary and its retrospects in submission order.
func (s *MemoryStore) Get(ctx context.Context, id int) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.diaries[id]
	if !ok {
		return Entry{}, errors.ErrDiaryNotFound(id)
	}
	rs := make([]Retrospect, len(s.retrospects[id]))
	copy(rs, s.retrospects[id])
	return Entry{Diary: d, Retrospects: rs}, nil
}

// Create validates and stores a new diary dated today.
func (s *MemoryStore) Create(ctx context.Context, in NewDiary) (Diary, error) {
	if err := ctx.Err(); err != nil {
		return Diary{}, err
	}
	if err := in.Validate(); err != nil {
		return Diary{}, err
	}
	in = in.trimmed()
	emotion, _ := ParseEmotion(in.Emotion)

	s.mu.Lock()
	defer s.mu.Unlock()

	d := Diary{
		ID:        s.nextID,
		Emotion:   emotion,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: s.now(),
	}
	s.diaries[d.ID] = d
	s.nextID++
	return d, nil
}

// AddRetrospect appends a trimmed retrospect to diary id.
func (s *MemoryStore) AddRetrospect(ctx context.Context, id int, content string) (Retrospect, error) {
	if err := ctx.Err(); err != nil {
		return Retrospect{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Retrospect{}, errors.NewValidationError(errors.ErrCodeValidationFailed, MsgRetrospectRequired).
			WithField("content")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.diaries[id]; !ok {
		return Retrospect{}, errors.ErrDiaryNotFound(id)
	}
	r := Retrospect{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: s.now(),
	}
	s.retrospects[id] = append(s.retrospects[id], r)
	return r, nil
}

// Delete removes a diary and its retrospects.
func (s *MemoryStore) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.diaries[id]; !ok {
		return errors.ErrDiaryNotFound(id)
	}
	delete(s.diaries, id)
	delete(s.retrospects, id)
	return nil
}

// Reload replaces the store contents with fixture data. On error the
// current contents are kept.
func (s *MemoryStore) Reload(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ds, err := parseFixture(data)
	if err != nil {
		return err
	}

	diaries := make(map[int]Diary, len(ds.diaries))
	next := 1
	for _, d := range ds.diaries {
		diaries[d.ID] = d
		if d.ID >= next {
			next = d.ID + 1
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.diaries = diaries
	s.retrospects = ds.retrospects
	s.nextID = next
	return nil
}

// Len returns the number of stored diaries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.diaries)
}
