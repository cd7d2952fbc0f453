package media

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	srcOK      Source = "/spool/ok.mp4"
	srcNoDims  Source = "/spool/nodims.mp4"
	srcBroken  Source = "/spool/broken.mp4"
	srcNoFrame Source = "https://cdn.example.com/v/noframe.mp4?sig=secret"
)

func newTestExtractor() (*Extractor, *fakeProber, *fakeGrabber) {
	p := newFakeProber()
	p.meta[srcOK] = &Metadata{Seconds: 65.4, Width: 32, Height: 18}
	p.meta[srcNoDims] = &Metadata{Seconds: 5}
	p.meta[srcNoFrame] = &Metadata{Seconds: 30, Width: 16, Height: 16}
	p.fail[srcBroken] = errors.New("moov atom not found")

	g := newFakeGrabber(32, 18)
	g.fail[srcNoFrame] = errors.New("tainted frame")
	return NewExtractor(p, g), p, g
}

func TestExtractDuration(t *testing.T) {
	e, _, g := newTestExtractor()

	d, err := e.ExtractDuration(context.Background(), srcOK)
	require.NoError(t, err)
	assert.Equal(t, "1:06", d.Formatted)
	assert.InDelta(t, 65.4, d.Seconds, 1e-9)
	assert.Zero(t, g.calls.Load(), "duration extraction must not seek")
}

func TestExtractDuration_LoadError(t *testing.T) {
	e, _, _ := newTestExtractor()

	_, err := e.ExtractDuration(context.Background(), srcBroken)
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.False(t, IsCaptureError(err))
	assert.Contains(t, err.Error(), "moov atom not found")
}

func TestLoadMetadata_InvalidDuration(t *testing.T) {
	e, p, _ := newTestExtractor()
	p.meta["/spool/zero.mp4"] = &Metadata{Seconds: 0}

	_, err := e.LoadMetadata(context.Background(), "/spool/zero.mp4")
	assert.True(t, IsLoadError(err))
}

func TestGenerateThumbnail(t *testing.T) {
	e, _, g := newTestExtractor()

	dataURL, err := e.GenerateThumbnail(context.Background(), srcOK)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURL, "data:image/jpeg;base64,"))
	assert.Equal(t, 2*time.Second, g.offsetFor(srcOK))

	mimeType, data, err := DecodeDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 18, img.Bounds().Dy())
}

func TestGenerateThumbnail_FallbackDimensions(t *testing.T) {
	e, _, g := newTestExtractor()

	dataURL, err := e.GenerateThumbnail(context.Background(), srcNoDims)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, g.offsetFor(srcNoDims))

	_, data, err := DecodeDataURL(dataURL)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, FallbackWidth, img.Bounds().Dx())
	assert.Equal(t, FallbackHeight, img.Bounds().Dy())
}

func TestGenerateThumbnail_CaptureError(t *testing.T) {
	e, _, _ := newTestExtractor()

	_, err := e.GenerateThumbnail(context.Background(), srcNoFrame)
	require.Error(t, err)
	assert.True(t, IsCaptureError(err))
	assert.False(t, IsLoadError(err))
	assert.NotContains(t, err.Error(), "secret")
}

func TestGenerateThumbnail_LoadErrorSkipsSeek(t *testing.T) {
	e, _, g := newTestExtractor()

	_, err := e.GenerateThumbnail(context.Background(), srcBroken)
	assert.True(t, IsLoadError(err))
	assert.Zero(t, g.calls.Load())
}

func TestExtract_TerminalStates(t *testing.T) {
	e, _, _ := newTestExtractor()
	ctx := context.Background()

	ok := e.Extract(ctx, srcOK)
	assert.Equal(t, StateFrameCaptured, ok.State)
	assert.NoError(t, ok.Err)
	require.NotNil(t, ok.Duration)
	assert.Equal(t, "1:06", ok.Duration.Formatted)
	require.NotNil(t, ok.Thumbnail)
	assert.NotEmpty(t, ok.Thumbnail.JPEG)

	broken := e.Extract(ctx, srcBroken)
	assert.Equal(t, StateLoadError, broken.State)
	assert.Nil(t, broken.Duration)
	assert.Nil(t, broken.Thumbnail)
	assert.True(t, IsLoadError(broken.Err))

	noFrame := e.Extract(ctx, srcNoFrame)
	assert.Equal(t, StateCaptureError, noFrame.State)
	require.NotNil(t, noFrame.Duration)
	assert.Equal(t, "0:30", noFrame.Duration.Formatted)
	assert.Nil(t, noFrame.Thumbnail)
	assert.True(t, IsCaptureError(noFrame.Err))
}

func TestSourceRedacted(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/v/noframe.mp4", srcNoFrame.Redacted())
	assert.Equal(t, "/spool/ok.mp4", srcOK.Redacted())
	assert.True(t, srcNoFrame.IsRemote())
	assert.False(t, srcOK.IsRemote())
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	_, _, err := DecodeDataURL("not-a-data-url")
	assert.Error(t, err)
	_, _, err = DecodeDataURL("data:image/jpeg,raw")
	assert.Error(t, err)
}
