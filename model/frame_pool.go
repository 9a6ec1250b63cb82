package model

import "sync"

// Frame is a copy of one generation handed to a renderer.
type Frame struct {
	Generation int
	Width      int
	Height     int
	Cells      [][]bool
}

// Reset resizes the frame and clears every cell
func (f *Frame) Reset(width, height int) {
	f.Width = width
	f.Height = height
	f.Generation = 0

	if len(f.Cells) != height {
		f.Cells = make([][]bool, height)
	}
	for i := range f.Cells {
		if len(f.Cells[i]) != width {
			f.Cells[i] = make([]bool, width)
		} else {
			clear(f.Cells[i])
		}
	}
}

// FramePool recycles frames between renders
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Frame{}
			},
		},
	}
}

// Get retrieves a frame from the pool, resetting its dimensions
func (p *FramePool) Get(width, height int) *Frame {
	f := p.pool.Get().(*Frame)
	f.Reset(width, height)
	return f
}

// Put returns a frame to the pool
func (p *FramePool) Put(f *Frame) {
	if f == nil {
		return
	}
	p.pool.Put(f)
}

// FrameToPool returns a frame to the pool when pooling is enabled
func FrameToPool(f *Frame, pool *FramePool) {
	if pool == nil {
		return
	}
	pool.Put(f)
}
