package bufferpool

import "github.com/ApurvGaikwad0/Buffer-Manager/internal/storage"

// pageIO is the slice of the page file the pool needs: one-page reads
// and writes plus release of the handle.
type pageIO interface {
	ReadPage(pageNum int32, dst []byte) error
	WritePage(pageNum int32, src []byte) error
	Close() error
}

var _ pageIO = (*storage.PageFile)(nil)

// Replacer tracks frame access order and chooses eviction victims.
// Frame IDs are pool slot indices in [0..capacity).
type Replacer interface {
	// RecordLoad notes that a page was loaded into the frame.
	RecordLoad(frameID int)
	// RecordAccess notes a hit on an already-resident frame.
	RecordAccess(frameID int)
	// Victim picks the next eviction candidate among frames the caller
	// marks eligible (pin count zero). ok is false when none qualifies.
	Victim(eligible func(frameID int) bool) (frameID int, ok bool)
	// Remove forgets the frame's ordering state.
	Remove(frameID int)
	// AttributeOf returns the frame's current replacement attribute,
	// zero when the frame has none.
	AttributeOf(frameID int) int64
}
