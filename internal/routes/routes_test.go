package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicPath(t *testing.T) {
	assert.Equal(t, "/diaries/42", DynamicPath(DiariesDetail, map[string]interface{}{"id": 42}))
	assert.Equal(t, "/diaries/abc", DynamicPath(DiariesDetail, map[string]interface{}{"id": "abc"}))
	assert.Equal(t, "/diaries/[id]", DynamicPath(DiariesDetail, map[string]interface{}{"other": 1}))
	assert.Equal(t, "/diaries", DynamicPath(DiariesList, map[string]interface{}{"id": 1}))
	assert.Equal(t, "/diaries/7", DiaryDetailURL(7))
}

func TestLinkState(t *testing.T) {
	tests := []struct {
		path     string
		diaries  bool
		pictures bool
	}{
		{"/diaries", true, false},
		{"/diaries/", true, false},
		{"/diaries/3", true, false},
		{"/diaries?page=2", true, false},
		{"/pictures", false, true},
		{"/pictures/1", false, false},
		{"/diariesx", false, false},
		{"/", false, false},
		{"/auth/login", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := LinkState(tt.path)
			assert.Equal(t, tt.diaries, s.DiariesActive)
			assert.Equal(t, tt.pictures, s.PicturesActive)
			assert.Equal(t, "/diaries", s.DiariesPath)
			assert.Equal(t, "/pictures", s.PicturesPath)
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/diaries", "diaries.list", true},
		{"/diaries/12", "diaries.detail", true},
		{"/diaries/12/", "diaries.detail", true},
		{"/pictures?x=1", "pictures.list", true},
		{"/auth/signup", "auth.signup", true},
		{"/diaries/1/extra", "", false},
		{"/nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Lookup(tt.path)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, r.Name)
		})
	}
}

func TestVisibilityTable(t *testing.T) {
	assert.Equal(t, Visibility{}, Login.Visibility)
	assert.Equal(t, Visibility{}, Signup.Visibility)

	assert.True(t, DiariesList.Visibility.Banner)
	assert.True(t, DiariesList.Visibility.Navigation)
	assert.Equal(t, DiariesList.Visibility, PicturesList.Visibility)

	assert.False(t, DiariesDetail.Visibility.Banner)
	assert.False(t, DiariesDetail.Visibility.Navigation)
	assert.True(t, DiariesDetail.Visibility.Footer)
	assert.Equal(t, MembersOnly, DiariesDetail.Access)

	for _, r := range All {
		assert.False(t, r.Visibility.HeaderDarkModeToggle, r.Name)
	}
}
