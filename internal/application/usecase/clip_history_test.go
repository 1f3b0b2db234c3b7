package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DylansGit/ClipSage/internal/application/port"
	portmocks "github.com/DylansGit/ClipSage/internal/application/port/mocks"
	"github.com/DylansGit/ClipSage/internal/application/usecase"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	repomocks "github.com/DylansGit/ClipSage/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClipHistoryUseCase_Save_Text(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	at := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.ClipItem")).
		Run(func(_ context.Context, item *entity.ClipItem) {
			assert.Equal(t, entity.ClipKindText, item.Kind)
			assert.Equal(t, "hello", item.Content)
			assert.Empty(t, item.ImagePath)
			assert.True(t, item.Timestamp.Equal(at))
			item.ID = 7
		}).
		Return(nil)

	metrics := newCountingMetrics()
	uc := usecase.NewClipHistoryUseCase(repo, nil, usecase.WithClock(fixedClock(at)), usecase.WithHistoryMetrics(metrics))

	err := uc.Save(ctx, usecase.SaveInput{Kind: entity.ClipKindText, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.captures["text"])
}

func TestClipHistoryUseCase_Save_ImageWritesPayloadFirst(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	payloads := portmocks.NewMockPayloadStore(t)
	at := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	img := []byte("png")

	var payloadWritten bool
	payloads.EXPECT().SaveImage(mock.Anything, at, img).
		Run(func(_ context.Context, _ time.Time, _ []byte) { payloadWritten = true }).
		Return("/images/clip_2025-05-01T09-30-00.000000000.png", nil)

	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.ClipItem")).
		Run(func(_ context.Context, item *entity.ClipItem) {
			require.True(t, payloadWritten, "payload must be written before the record")
			assert.Equal(t, entity.ClipKindImage, item.Kind)
			assert.Equal(t, "receipt", item.Content)
			assert.Equal(t, "/images/clip_2025-05-01T09-30-00.000000000.png", item.ImagePath)
		}).
		Return(nil)

	uc := usecase.NewClipHistoryUseCase(repo, payloads, usecase.WithClock(fixedClock(at)))

	err := uc.Save(ctx, usecase.SaveInput{Kind: entity.ClipKindImage, Content: "receipt", Image: img})
	require.NoError(t, err)
}

func TestClipHistoryUseCase_Save_PayloadFailureStillRecords(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	payloads := portmocks.NewMockPayloadStore(t)

	payloads.EXPECT().SaveImage(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("disk full"))

	var inserted []*entity.ClipItem
	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.ClipItem")).
		Run(func(_ context.Context, item *entity.ClipItem) { inserted = append(inserted, item) }).
		Return(nil).Once()

	metrics := newCountingMetrics()
	uc := usecase.NewClipHistoryUseCase(repo, payloads, usecase.WithHistoryMetrics(metrics))

	err := uc.Save(ctx, usecase.SaveInput{Kind: entity.ClipKindImage, Content: "", Image: []byte("png")})
	require.NoError(t, err)

	require.Len(t, inserted, 1)
	assert.Empty(t, inserted[0].ImagePath)
	assert.Equal(t, "", inserted[0].Content)
	assert.Equal(t, 1, metrics.failures[port.StagePayload])
}

func TestClipHistoryUseCase_Save_InvalidKind(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	uc := usecase.NewClipHistoryUseCase(repo, nil)

	err := uc.Save(ctx, usecase.SaveInput{Kind: "audio", Content: "x"})
	assert.ErrorIs(t, err, usecase.ErrInvalidKind)
}

func TestClipHistoryUseCase_Save_InsertFailure(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	metrics := newCountingMetrics()
	uc := usecase.NewClipHistoryUseCase(repo, nil, usecase.WithHistoryMetrics(metrics))

	err := uc.Save(ctx, usecase.SaveInput{Kind: entity.ClipKindText, Content: "x"})
	assert.ErrorIs(t, err, usecase.ErrSaveFailed)
	assert.Equal(t, 1, metrics.failures[port.StageSave])
	assert.Zero(t, metrics.captures["text"])
}

func TestClipHistoryUseCase_Save_TimestampsStrictlyIncrease(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	var stamps []time.Time
	repo.EXPECT().Insert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, item *entity.ClipItem) { stamps = append(stamps, item.Timestamp) }).
		Return(nil).Times(3)

	// A frozen clock still yields distinct, ordered timestamps.
	at := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	uc := usecase.NewClipHistoryUseCase(repo, nil, usecase.WithClock(fixedClock(at)))

	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, uc.Save(ctx, usecase.SaveInput{Kind: entity.ClipKindText, Content: s}))
	}

	require.Len(t, stamps, 3)
	assert.True(t, stamps[1].After(stamps[0]))
	assert.True(t, stamps[2].After(stamps[1]))
}

func TestClipHistoryUseCase_FetchAll(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	items := []*entity.ClipItem{
		{ID: 2, Kind: entity.ClipKindText, Content: "world"},
		{ID: 1, Kind: entity.ClipKindText, Content: "hello"},
	}
	repo.EXPECT().ListRecent(mock.Anything).Return(items, nil)

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	got := uc.FetchAll(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "world", got[0].Content)
}

func TestClipHistoryUseCase_FetchAll_ErrorYieldsEmpty(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	repo.EXPECT().ListRecent(mock.Anything).Return(nil, errors.New("no such table: history"))

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	got := uc.FetchAll(ctx)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClipHistoryUseCase_Search(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	items := []*entity.ClipItem{
		{ID: 3, Kind: entity.ClipKindImage, Content: "Invoice total"},
		{ID: 2, Kind: entity.ClipKindText, Content: "grocery list"},
		{ID: 1, Kind: entity.ClipKindText, Content: "INVOICE #12"},
	}
	repo.EXPECT().ListRecent(mock.Anything).Return(items, nil)

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	got := uc.Search(ctx, "invoice")
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestClipHistoryUseCase_Search_EmptyQueryReturnsAll(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	repo.EXPECT().ListRecent(mock.Anything).Return([]*entity.ClipItem{{ID: 1}, {ID: 2}}, nil)

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	assert.Len(t, uc.Search(ctx, ""), 2)
}

func TestClipHistoryUseCase_ClearAll(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(nil)

	uc := usecase.NewClipHistoryUseCase(repo, nil)
	require.NoError(t, uc.ClearAll(ctx))
}

func TestClipHistoryUseCase_ClearAll_Error(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	dbErr := errors.New("readonly database")
	repo.EXPECT().DeleteAll(mock.Anything).Return(dbErr)

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	err := uc.ClearAll(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestClipHistoryUseCase_Count(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockClipRepository(t)
	repo.EXPECT().Count(mock.Anything).Return(int64(12), nil)

	uc := usecase.NewClipHistoryUseCase(repo, nil)

	n, err := uc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}
