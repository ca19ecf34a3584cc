package canvas

import (
	"image"
	"sync"
)

// Pool recycles RGBA canvases of identical size.
//
// Frames are painted on a scratch canvas and quantised into a paletted
// image, after which the scratch canvas goes back to the pool for the next
// frame. Contents of a reused canvas are undefined; callers overwrite them.
//
// Pool is safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.RGBA
	maxSize int // max canvases per bucket
}

// NewPool creates a pool that retains at most maxPerBucket canvases of
// each size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[image.Point][]*image.RGBA),
		maxSize: maxPerBucket,
	}
}

// Get returns a width x height canvas, reusing a pooled one if available.
func (p *Pool) Get(width, height int) (*image.RGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	key := image.Point{X: width, Y: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		img := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return img, nil
	}
	p.mu.Unlock()

	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Put returns img to the pool. Nil canvases, canvases not anchored at the
// origin and canvases beyond the bucket limit are discarded.
func (p *Pool) Put(img *image.RGBA) {
	if img == nil || img.Rect.Min != (image.Point{}) {
		return
	}
	key := img.Rect.Max

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.maxSize > 0 && len(p.buckets[key]) >= p.maxSize {
		return
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// Len returns the number of pooled canvases.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
