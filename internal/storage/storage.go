package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	// PageSize is the fixed size of every page in the file.
	PageSize = 4096
)

// NoPage marks a frame slot that holds no page.
const NoPage int32 = -1

var (
	ErrFileNotFound = errors.New("storage: page file not found")
	ErrClosed       = errors.New("storage: page file is closed")
)

// PageFile gives page-granular read/write access to an existing file.
// Pages are addressed by a zero-based page number; page N lives at byte
// offset N*PageSize. The file is never created here: higher layers own
// the file format and its allocation.
type PageFile struct {
	path string
	file *os.File
}

// Open opens an existing page file for read/write. It returns
// ErrFileNotFound when the file does not exist.
func Open(path string) (*PageFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open page file: %w", err)
	}
	return &PageFile{path: path, file: f}, nil
}

func (pf *PageFile) Path() string { return pf.path }

// PageCount reports how many whole pages the file currently holds.
func (pf *PageFile) PageCount() (int32, error) {
	if pf.file == nil {
		return 0, ErrClosed
	}
	info, err := pf.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat page file: %w", err)
	}
	return int32(info.Size() / PageSize), nil
}

// ReadPage reads exactly one page into dst. Reads past the current end
// of file are zero-filled rather than rejected; the file's length in
// pages is the owning layer's concern.
func (pf *PageFile) ReadPage(pageNum int32, dst []byte) error {
	if pf.file == nil {
		return ErrClosed
	}
	if len(dst) != PageSize {
		return fmt.Errorf("storage: dst must be exactly %d bytes", PageSize)
	}
	n, err := pf.file.ReadAt(dst, int64(pageNum)*PageSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read page %d: %w", pageNum, err)
	}
	// Zero-fill the rest of the page on EOF or a short read.
	for i := n; i < PageSize; i++ {
		dst[i] = 0
	}
	return nil
}

// WritePage writes exactly one page from src at pageNum's offset.
func (pf *PageFile) WritePage(pageNum int32, src []byte) error {
	if pf.file == nil {
		return ErrClosed
	}
	if len(src) != PageSize {
		return fmt.Errorf("storage: src must be exactly %d bytes", PageSize)
	}
	n, err := pf.file.WriteAt(src, int64(pageNum)*PageSize)
	if err != nil {
		return fmt.Errorf("write page %d: %w", pageNum, err)
	}
	if n != PageSize {
		return io.ErrShortWrite
	}
	return nil
}

func (pf *PageFile) Close() error {
	if pf.file == nil {
		return ErrClosed
	}
	err := pf.file.Close()
	pf.file = nil
	return err
}
