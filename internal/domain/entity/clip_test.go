package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
)

func TestClipKind_Valid(t *testing.T) {
	assert.True(t, entity.ClipKindText.Valid())
	assert.True(t, entity.ClipKindImage.Valid())
	assert.False(t, entity.ClipKind("video").Valid())
	assert.False(t, entity.ClipKind("").Valid())
}

func TestClipItem_Matches_CaseInsensitive(t *testing.T) {
	item := &entity.ClipItem{Kind: entity.ClipKindText, Content: "Hello World"}

	assert.True(t, item.Matches(""))
	assert.True(t, item.Matches("hello"))
	assert.True(t, item.Matches("WORLD"))
	assert.True(t, item.Matches("lo wo"))
	assert.False(t, item.Matches("goodbye"))
}

func TestClipItem_HasImage(t *testing.T) {
	assert.True(t, (&entity.ClipItem{Kind: entity.ClipKindImage, ImagePath: "/tmp/a.png"}).HasImage())
	assert.False(t, (&entity.ClipItem{Kind: entity.ClipKindImage}).HasImage())
	assert.False(t, (&entity.ClipItem{Kind: entity.ClipKindText, ImagePath: "/tmp/a.png"}).HasImage())
}

func TestFilterClips_PreservesOrder(t *testing.T) {
	items := []*entity.ClipItem{
		{ID: 3, Content: "gamma ray"},
		{ID: 2, Content: "beta"},
		{ID: 1, Content: "Gamma knife"},
	}

	got := entity.FilterClips(items, "gamma")
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	}

	assert.Empty(t, entity.FilterClips(items, "delta"))
	assert.NotNil(t, entity.FilterClips(nil, "x"))
}
