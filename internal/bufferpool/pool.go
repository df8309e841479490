package bufferpool

import (
	"fmt"
	"sync"

	"github.com/ApurvGaikwad0/Buffer-Manager/internal/storage"
)

// DefaultCapacity is used by callers that do not size the pool.
var DefaultCapacity = 128

// Option configures a Pool at Open.
type Option func(*Pool)

// WithLRUKParam stores the K parameter carried by the LRU-K strategy
// tag. The pool records it; selection itself does not consume it.
func WithLRUKParam(k int) Option {
	return func(p *Pool) { p.lruK = k }
}

// WithReplacer swaps in a custom replacement policy.
func WithReplacer(r Replacer) Option {
	return func(p *Pool) { p.repl = r }
}

// Pool is a fixed-capacity page buffer over a single page file. It
// owns all frame storage; callers only ever see Handle copies. One
// mutex serializes every operation, so victim-selection-plus-load is
// a single atomic region.
type Pool struct {
	mu sync.Mutex

	pf       pageIO
	capacity int
	strategy Strategy
	lruK     int

	frames    []frame
	pageTable map[int32]int // resident pageNum -> frame index

	repl Replacer

	readCount  int64
	writeCount int64

	closed bool
}

// Open opens an existing page file and builds an empty pool of
// capacity frames on top of it. No page content is read here.
func Open(path string, capacity int, strategy Strategy, opts ...Option) (*Pool, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	pf, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		pf:        pf,
		capacity:  capacity,
		strategy:  strategy,
		frames:    make([]frame, capacity),
		pageTable: make(map[int32]int, capacity),
		repl:      newStampAdapter(capacity, strategy),
	}
	for i := range p.frames {
		p.frames[i].pageNum = storage.NoPage
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pool) Capacity() int      { return p.capacity }
func (p *Pool) Strategy() Strategy { return p.strategy }

// LRUKParam returns the stored K parameter, zero unless set at Open.
func (p *Pool) LRUKParam() int { return p.lruK }

// Pin makes pageNum resident and takes a reference on its frame.
// Hits cost no I/O; misses load the page from the file, evicting an
// unpinned frame first when the pool is full. A dirty victim is
// written back before its slot is reused.
func (p *Pool) Pin(pageNum int32) (Handle, error) {
	if pageNum < 0 {
		return Handle{}, ErrInvalidPageNum
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return Handle{}, ErrPoolClosed
	}

	// Hit: refresh recency (LRU-class only) and hand out a copy.
	if idx, ok := p.pageTable[pageNum]; ok {
		f := &p.frames[idx]
		p.repl.RecordAccess(idx)
		f.pin++
		return f.handle(), nil
	}

	idx := p.freeFrame()
	if idx == -1 {
		victim, ok := p.repl.Victim(p.eligible)
		if !ok {
			return Handle{}, ErrNoFreeFrame
		}
		if victim < 0 || victim >= len(p.frames) || p.frames[victim].pin != 0 {
			// The replacer must never hand back an out-of-range or
			// pinned victim.
			return Handle{}, ErrNoFreeFrame
		}
		if err := p.evict(victim); err != nil {
			return Handle{}, err
		}
		idx = victim
	}

	f := &p.frames[idx]
	if f.data == nil {
		f.data = make([]byte, storage.PageSize)
	}
	if err := p.pf.ReadPage(pageNum, f.data); err != nil {
		// The slot reports itself empty after a failed load; the
		// evicted page's identity is already gone and its stale bytes
		// must never surface.
		p.repl.Remove(idx)
		f.pageNum = storage.NoPage
		f.pin = 0
		f.dirty = false
		return Handle{}, err
	}
	p.readCount++

	f.pageNum = pageNum
	f.pin = 1
	f.dirty = false
	p.pageTable[pageNum] = idx
	p.repl.RecordLoad(idx)

	return f.handle(), nil
}

// Unpin releases one reference on the frame holding pageNum.
func (p *Pool) Unpin(pageNum int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	idx, ok := p.pageTable[pageNum]
	if !ok {
		return fmt.Errorf("%w: page %d", ErrPageNotFound, pageNum)
	}
	f := &p.frames[idx]
	if f.pin == 0 {
		return fmt.Errorf("%w: page %d", ErrPageNotPinned, pageNum)
	}
	f.pin--
	return nil
}

// MarkDirty records that pageNum's in-memory content has diverged from
// disk. It is independent of pin state and performs no I/O.
func (p *Pool) MarkDirty(pageNum int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	idx, ok := p.pageTable[pageNum]
	if !ok {
		return fmt.Errorf("%w: page %d", ErrPageNotFound, pageNum)
	}
	p.frames[idx].dirty = true
	return nil
}

// UpdatePage copies data into the resident frame for pageNum. Handles
// are copies, so this is the only route for content changes to reach
// the pool; callers still MarkDirty explicitly.
func (p *Pool) UpdatePage(pageNum int32, data []byte) error {
	if len(data) != storage.PageSize {
		return ErrBadUpdateSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	idx, ok := p.pageTable[pageNum]
	if !ok {
		return fmt.Errorf("%w: page %d", ErrPageNotFound, pageNum)
	}
	copy(p.frames[idx].data, data)
	return nil
}

// FlushPage writes pageNum's frame to the file regardless of pin state
// and clears its dirty flag.
func (p *Pool) FlushPage(pageNum int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	idx, ok := p.pageTable[pageNum]
	if !ok {
		return fmt.Errorf("%w: page %d", ErrPageNotFound, pageNum)
	}
	return p.writeFrame(&p.frames[idx])
}

// FlushAll writes every dirty, unpinned frame back to the file.
// Pinned frames stay dirty; they are flushed on eviction or on a later
// FlushAll after being unpinned. The first write failure aborts the
// remainder; frames already flushed stay clean.
func (p *Pool) FlushAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	return p.flushAllLocked()
}

// Close flushes all dirty unpinned frames, releases frame storage and
// leaves the pool unusable. It fails with ErrPinnedPages while any
// frame still has holders, leaving the pool fully intact.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}

	for i := range p.frames {
		if p.frames[i].pin != 0 {
			return fmt.Errorf("%w: page %d", ErrPinnedPages, p.frames[i].pageNum)
		}
	}
	if err := p.flushAllLocked(); err != nil {
		return err
	}

	for i := range p.frames {
		p.frames[i] = frame{pageNum: storage.NoPage}
		p.repl.Remove(i)
	}
	p.pageTable = nil
	p.closed = true
	return p.pf.Close()
}

func (p *Pool) flushAllLocked() error {
	for i := range p.frames {
		f := &p.frames[i]
		if f.empty() || !f.dirty || f.pin != 0 {
			continue
		}
		if err := p.writeFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// eligible reports whether the frame may be evicted.
func (p *Pool) eligible(idx int) bool {
	return p.frames[idx].pin == 0
}

func (p *Pool) freeFrame() int {
	for i := range p.frames {
		if p.frames[i].empty() {
			return i
		}
	}
	return -1
}

// evict writes back a dirty victim and logically clears its slot. On a
// write failure the victim keeps its page untouched and Pin aborts.
func (p *Pool) evict(idx int) error {
	f := &p.frames[idx]
	if f.dirty {
		if err := p.writeFrame(f); err != nil {
			return err
		}
	}
	delete(p.pageTable, f.pageNum)
	f.pageNum = storage.NoPage
	return nil
}

func (p *Pool) writeFrame(f *frame) error {
	if err := p.pf.WritePage(f.pageNum, f.data); err != nil {
		return fmt.Errorf("flush page %d: %w", f.pageNum, err)
	}
	p.writeCount++
	f.dirty = false
	return nil
}
