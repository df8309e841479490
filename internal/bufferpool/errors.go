package bufferpool

import "errors"

var (
	// ErrPoolClosed is returned by any operation on a pool that was
	// never opened or has already been closed.
	ErrPoolClosed = errors.New("bufferpool: pool is closed")

	ErrInvalidCapacity = errors.New("bufferpool: capacity must be positive")
	ErrInvalidPageNum  = errors.New("bufferpool: negative page number")

	// ErrNoFreeFrame means every frame is pinned: no empty slot and no
	// eviction victim.
	ErrNoFreeFrame = errors.New("bufferpool: no free frame available (all pinned)")

	ErrPageNotFound  = errors.New("bufferpool: page not resident")
	ErrPageNotPinned = errors.New("bufferpool: page is not pinned")

	// ErrPinnedPages blocks Close while any frame still has holders.
	ErrPinnedPages = errors.New("bufferpool: pages still pinned")

	ErrBadUpdateSize   = errors.New("bufferpool: update data must be exactly one page")
	ErrUnknownStrategy = errors.New("bufferpool: unknown replacement strategy")
)
