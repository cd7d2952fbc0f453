package service

import (
	"bytes"
	"context"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"sync"
	"testing"
	"time"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/media"
	"cyberedu_admin/internal/upstream"

	"github.com/stretchr/testify/require"
)

// newStubBackend 按路径返回固定 JSON
func newStubBackend(t *testing.T, routes map[string]http.HandlerFunc) *upstream.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func jsonReply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

// fileHeader 构造一个经过 multipart 解析的上传文件
func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func mp4Bytes() []byte {
	return append([]byte{0x00, 0x00, 0x00, 0x18}, []byte("ftypmp42\x00\x00\x00\x00mp42isom-rest-of-file")...)
}

type stubProber struct {
	mu      sync.Mutex
	md      *media.Metadata
	err     error
	sources []media.Source
	existed []bool
}

func (p *stubProber) Probe(_ context.Context, src media.Source) (*media.Metadata, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources = append(p.sources, src)
	if !src.IsRemote() {
		_, err := os.Stat(string(src))
		p.existed = append(p.existed, err == nil)
	}
	if p.err != nil {
		return nil, p.err
	}
	cp := *p.md
	return &cp, nil
}

type stubGrabber struct {
	err error
}

func (g *stubGrabber) Grab(_ context.Context, _ media.Source, _ time.Duration) (image.Image, error) {
	if g.err != nil {
		return nil, g.err
	}
	return image.NewRGBA(image.Rect(0, 0, 16, 9)), nil
}
