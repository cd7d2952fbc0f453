package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{65.4, "1:06"},
		{65.1, "1:06"},
		{65, "1:05"},
		{5, "0:05"},
		{0.2, "0:01"},
		{600, "10:00"},
		{3599.5, "59:60"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestSeekOffset(t *testing.T) {
	assert.Equal(t, 2*time.Second, SeekOffset(120))
	assert.Equal(t, 2*time.Second, SeekOffset(20))
	assert.Equal(t, 500*time.Millisecond, SeekOffset(5))
	assert.Equal(t, time.Duration(0), SeekOffset(0))
	assert.Equal(t, time.Duration(0), SeekOffset(-3))
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateLoadError.Terminal())
	assert.True(t, StateCaptureError.Terminal())
	assert.True(t, StateFrameCaptured.Terminal())
	assert.False(t, StateMetadataReady.Terminal())
	assert.False(t, StateSeekingFrame.Terminal())
	assert.Equal(t, "seeking_frame", StateSeekingFrame.String())
	assert.Equal(t, "unknown", State(99).String())
}
