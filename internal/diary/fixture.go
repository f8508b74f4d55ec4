package diary

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/diary/internal/errors"
)

//go:embed fixture.yaml
var defaultFixture []byte

// DefaultFixture returns the mock data compiled into the binary.
func DefaultFixture() []byte {
	out := make([]byte, len(defaultFixture))
	copy(out, defaultFixture)
	return out
}

// ReadFixtureFile loads fixture data from disk.
func ReadFixtureFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapIO(err, errors.ErrCodeFileNotFound, "read fixture").
			WithContext("path", path)
	}
	return data, nil
}

type fixtureFile struct {
	Diaries []fixtureDiary `yaml:"diaries"`
}

type fixtureDiary struct {
	ID          int                 `yaml:"id"`
	Emotion     string              `yaml:"emotion"`
	Title       string              `yaml:"title"`
	Content     string              `yaml:"content"`
	Date        string              `yaml:"date"`
	Image       string              `yaml:"image,omitempty"`
	Retrospects []fixtureRetrospect `yaml:"retrospects,omitempty"`
}

type fixtureRetrospect struct {
	ID      string `yaml:"id,omitempty"`
	Content string `yaml:"content"`
	Date    string `yaml:"date"`
}

// dataset is a decoded, validated fixture.
type dataset struct {
	diaries     []Diary
	retrospects map[int][]Retrospect
}

func parseFixture(data []byte) (*dataset, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapValidation(err, errors.ErrCodeFixtureInvalid, "decode fixture")
	}

	ds := &dataset{
		diaries:     make([]Diary, 0, len(file.Diaries)),
		retrospects: make(map[int][]Retrospect),
	}
	seen := make(map[int]struct{}, len(file.Diaries))

	for i, fd := range file.Diaries {
		field := fmt.Sprintf("diaries[%d]", i)

		if fd.ID <= 0 {
			return nil, fixtureError(field+".id", "id must be positive")
		}
		if _, dup := seen[fd.ID]; dup {
			return nil, fixtureError(field+".id", fmt.Sprintf("duplicate id %d", fd.ID))
		}
		seen[fd.ID] = struct{}{}

		emotion, ok := ParseEmotion(fd.Emotion)
		if !ok {
			return nil, fixtureError(field+".emotion", fmt.Sprintf("unknown emotion %q", fd.Emotion))
		}

		created, err := ParseDate(fd.Date)
		if err != nil {
			return nil, fixtureError(field+".date", err.Error())
		}

		ds.diaries = append(ds.diaries, Diary{
			ID:        fd.ID,
			Emotion:   emotion,
			Title:     fd.Title,
			Content:   fd.Content,
			CreatedAt: created,
			Image:     fd.Image,
		})

		for j, fr := range fd.Retrospects {
			created, err := ParseDate(fr.Date)
			if err != nil {
				return nil, fixtureError(fmt.Sprintf("%s.retrospects[%d].date", field, j), err.Error())
			}
			id := fr.ID
			if id == "" {
				id = uuid.NewString()
			}
			ds.retrospects[fd.ID] = append(ds.retrospects[fd.ID], Retrospect{
				ID:        id,
				Content:   fr.Content,
				CreatedAt: created,
			})
		}
	}

	return ds, nil
}

func fixtureError(field, message string) *errors.DiaryError {
	return errors.NewValidationError(errors.ErrCodeFixtureInvalid, message).
		WithField(field).
		WithComponent("fixture")
}
