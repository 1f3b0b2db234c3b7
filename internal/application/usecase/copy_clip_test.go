package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/DylansGit/ClipSage/internal/application/port/mocks"
	"github.com/DylansGit/ClipSage/internal/application/usecase"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCopyClipUseCase_Copy_Text(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "hello").Return(nil)

	uc := usecase.NewCopyClipUseCase(clip)
	require.NoError(t, uc.Copy(ctx, &entity.ClipItem{Kind: entity.ClipKindText, Content: "hello"}))
}

func TestCopyClipUseCase_Copy_ImageUsesExtractedText(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "total: 42").Return(nil)

	uc := usecase.NewCopyClipUseCase(clip)
	item := &entity.ClipItem{Kind: entity.ClipKindImage, Content: "total: 42", ImagePath: "/img.png"}
	require.NoError(t, uc.Copy(ctx, item))
}

func TestCopyClipUseCase_Copy_ImageWithoutTextNothingToCopy(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	uc := usecase.NewCopyClipUseCase(clip)

	err := uc.Copy(ctx, &entity.ClipItem{Kind: entity.ClipKindImage, ImagePath: "/img.png"})
	assert.ErrorIs(t, err, usecase.ErrNothingToCopy)

	assert.ErrorIs(t, uc.Copy(ctx, nil), usecase.ErrNothingToCopy)
}

func TestCopyClipUseCase_Copy_WriteFailure(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "x").Return(errors.New("wl-copy missing"))

	uc := usecase.NewCopyClipUseCase(clip)
	err := uc.Copy(ctx, &entity.ClipItem{Kind: entity.ClipKindText, Content: "x"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrNothingToCopy)
}

func TestCopyClipUseCase_CopyCombined(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "first\n\nsecond").Return(nil)

	uc := usecase.NewCopyClipUseCase(clip)
	items := []*entity.ClipItem{
		{Kind: entity.ClipKindText, Content: "  first"},
		{Kind: entity.ClipKindImage, Content: "second\n"},
	}
	require.NoError(t, uc.CopyCombined(ctx, items))
}

func TestCopyClipUseCase_CopyCombined_SkipsItemsWithoutText(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	clip.EXPECT().WriteText(mock.Anything, "A\n\nB").Return(nil)

	uc := usecase.NewCopyClipUseCase(clip)
	items := []*entity.ClipItem{
		{Kind: entity.ClipKindText, Content: "A"},
		{Kind: entity.ClipKindImage, ImagePath: "/img.png"},
		nil,
		{Kind: entity.ClipKindText, Content: "  \n"},
		{Kind: entity.ClipKindText, Content: "B"},
	}
	require.NoError(t, uc.CopyCombined(ctx, items))
}

func TestCopyClipUseCase_CopyCombined_AllEmpty(t *testing.T) {
	ctx := testContext()

	clip := portmocks.NewMockClipboard(t)
	uc := usecase.NewCopyClipUseCase(clip)

	err := uc.CopyCombined(ctx, []*entity.ClipItem{
		{Kind: entity.ClipKindImage},
		{Kind: entity.ClipKindImage},
	})
	assert.ErrorIs(t, err, usecase.ErrNothingToCopy)

	assert.ErrorIs(t, uc.CopyCombined(ctx, nil), usecase.ErrNothingToCopy)
}

func TestCopyClipUseCase_NilClipboard(t *testing.T) {
	ctx := testContext()

	uc := usecase.NewCopyClipUseCase(nil)
	err := uc.Copy(ctx, &entity.ClipItem{Kind: entity.ClipKindText, Content: "x"})
	assert.Error(t, err)
}
