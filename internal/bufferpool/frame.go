package bufferpool

import "github.com/ApurvGaikwad0/Buffer-Manager/internal/storage"

// frame is one pool slot. data is allocated lazily on the slot's first
// load and reused (overwritten, not reallocated) across evictions.
type frame struct {
	pageNum int32  // storage.NoPage while empty
	data    []byte // nil until the slot first holds a page
	pin     int32
	dirty   bool
}

func (f *frame) empty() bool { return f.pageNum == storage.NoPage }

// handle snapshots the frame for a caller.
func (f *frame) handle() Handle {
	data := make([]byte, len(f.data))
	copy(data, f.data)
	return Handle{PageNum: f.pageNum, Data: data}
}

// Handle is a caller-facing copy of a frame's state at pin time. It
// never aliases pool storage: mutating Data has no effect on the pool.
// Content changes flow back through UpdatePage, dirty marking through
// MarkDirty, release through Unpin.
type Handle struct {
	PageNum int32
	Data    []byte
}
