package media

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	const max = 100 << 20
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"mp4", "video/mp4", 1024, false},
		{"uppercase", "Video/WebM", 1024, false},
		{"image rejected", "image/png", 1024, true},
		{"empty type", "", 1024, true},
		{"empty file", "video/mp4", 0, true},
		{"at limit", "video/mp4", max, false},
		{"over limit", "video/mp4", max + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.contentType, tt.size, max)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateUpload_SizeMessage(t *testing.T) {
	err := ValidateUpload("video/mp4", 101<<20, 100<<20)
	require.Error(t, err)
	assert.Equal(t, "Video file size should not exceed 100MB", err.Error())
}

func TestSniffVideo(t *testing.T) {
	// ftyp box of an ISO base media (mp4) file
	mp4 := append([]byte{0x00, 0x00, 0x00, 0x18}, []byte("ftypmp42\x00\x00\x00\x00mp42isom")...)
	mimeType, err := SniffVideo(bytes.NewReader(mp4))
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", mimeType)

	_, err = SniffVideo(bytes.NewReader([]byte("%PDF-1.4 not a video")))
	assert.True(t, IsValidationError(err))
}
