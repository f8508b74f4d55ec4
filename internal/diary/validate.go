package diary

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/conneroisu/diary/internal/errors"
)

// MsgAllFieldsRequired is shown when the new-diary form is incomplete.
const MsgAllFieldsRequired = "모든 항목을 입력해주세요."

// MsgRetrospectRequired is shown when a retrospect is submitted empty.
const MsgRetrospectRequired = "회고 내용을 입력해주세요."

// NewDiary is the new-diary form submission.
type NewDiary struct {
	Emotion string `validate:"required,emotion"`
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("emotion", func(fl validator.FieldLevel) bool {
			_, ok := ParseEmotion(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// trimmed returns a copy with surrounding whitespace removed from every field.
func (n NewDiary) trimmed() NewDiary {
	return NewDiary{
		Emotion: strings.TrimSpace(n.Emotion),
		Title:   strings.TrimSpace(n.Title),
		Content: strings.TrimSpace(n.Content),
	}
}

// Validate checks that every field is filled in. The returned error is a
// validation DiaryError whose context maps field names to the failed rule.
func (n NewDiary) Validate() error {
	in := n.trimmed()
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.WrapValidation(err, errors.ErrCodeValidationFailed, MsgAllFieldsRequired)
	}

	var fe errors.FieldErrors
	for _, ve := range ves {
		fe.Add(strings.ToLower(ve.Field()), ve.Value(), ve.Tag())
	}
	return fe.ToDiaryError(MsgAllFieldsRequired)
}
