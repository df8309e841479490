package bufferpool

import "github.com/ApurvGaikwad0/Buffer-Manager/internal/storage"

// Read-only snapshots for observability and tests. None of these
// mutate pool state or touch the page file.

// FrameContents reports the page resident in each frame, storage.NoPage
// for slots holding nothing.
func (p *Pool) FrameContents() []int32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]int32, len(p.frames))
	for i := range p.frames {
		if p.frames[i].data == nil {
			out[i] = storage.NoPage
			continue
		}
		out[i] = p.frames[i].pageNum
	}
	return out
}

// DirtyFlags reports each frame's dirty flag.
func (p *Pool) DirtyFlags() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]bool, len(p.frames))
	for i := range p.frames {
		out[i] = p.frames[i].dirty
	}
	return out
}

// PinCounts reports each frame's outstanding holder count.
func (p *Pool) PinCounts() []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]int, len(p.frames))
	for i := range p.frames {
		out[i] = int(p.frames[i].pin)
	}
	return out
}

// Attributes reports each frame's replacement attribute, zero for a
// frame that has none.
func (p *Pool) Attributes() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]int64, len(p.frames))
	for i := range p.frames {
		out[i] = p.repl.AttributeOf(i)
	}
	return out
}

// ReadCount is the cumulative number of page reads since Open.
func (p *Pool) ReadCount() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readCount
}

// WriteCount is the cumulative number of page writes since Open.
func (p *Pool) WriteCount() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeCount
}
