package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
)

func TestWriteClipsJSON_Limit(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clips := []*entity.ClipItem{
		{ID: 3, Kind: entity.ClipKindText, Content: "c", Timestamp: now},
		{ID: 2, Kind: entity.ClipKindImage, Content: "b", ImagePath: "/x/b.png", Timestamp: now.Add(-time.Second)},
		{ID: 1, Kind: entity.ClipKindText, Content: "a", Timestamp: now.Add(-2 * time.Second)},
	}

	var buf bytes.Buffer
	require.NoError(t, writeClipsJSON(&buf, clips, 2))

	var got []entity.ClipItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, "/x/b.png", got[1].ImagePath)

	buf.Reset()
	require.NoError(t, writeClipsJSON(&buf, clips, 0))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 3)
}

func TestWriteClipsJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeClipsJSON(&buf, []*entity.ClipItem{}, 10))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(512))
	assert.Equal(t, "1.5 KiB", humanBytes(1536))
	assert.Equal(t, "3.0 MiB", humanBytes(3*1024*1024))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(strings.NewReader(tt.input), &out, "Delete?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}
