package media

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"
)

type fakeProber struct {
	mu      sync.Mutex
	meta    map[Source]*Metadata
	fail    map[Source]error
	calls   map[Source]int
	delay   time.Duration
	started chan struct{}
}

func newFakeProber() *fakeProber {
	return &fakeProber{
		meta:  make(map[Source]*Metadata),
		fail:  make(map[Source]error),
		calls: make(map[Source]int),
	}
}

func (p *fakeProber) Probe(ctx context.Context, src Source) (*Metadata, error) {
	p.mu.Lock()
	p.calls[src]++
	md, err := p.meta[src], p.fail[src]
	delay, started := p.delay, p.started
	p.mu.Unlock()

	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	if md == nil {
		return nil, errors.New("unknown source")
	}
	cp := *md
	return &cp, nil
}

func (p *fakeProber) callsFor(src Source) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[src]
}

type fakeGrabber struct {
	mu      sync.Mutex
	fail    map[Source]error
	offsets map[Source]time.Duration
	width   int
	height  int
	calls   atomic.Int32
}

func newFakeGrabber(w, h int) *fakeGrabber {
	return &fakeGrabber{
		fail:    make(map[Source]error),
		offsets: make(map[Source]time.Duration),
		width:   w,
		height:  h,
	}
}

func (g *fakeGrabber) Grab(ctx context.Context, src Source, at time.Duration) (image.Image, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.offsets[src] = at
	err := g.fail[src]
	g.mu.Unlock()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img, nil
}

func (g *fakeGrabber) offsetFor(src Source) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.offsets[src]
}
