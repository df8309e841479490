package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPageFile(t *testing.T, pages int) *PageFile {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pages.db")
	require.NoError(t, os.WriteFile(path, make([]byte, pages*PageSize), 0o644))

	pf, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pf.Close() })
	return pf
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestPageFile_ReadWriteRoundTrip(t *testing.T) {
	pf := newPageFile(t, 4)

	src := make([]byte, PageSize)
	src[0] = 0xDE
	src[PageSize-1] = 0xAD
	require.NoError(t, pf.WritePage(2, src))

	dst := make([]byte, PageSize)
	require.NoError(t, pf.ReadPage(2, dst))
	require.Equal(t, src, dst)

	// Neighboring pages untouched.
	require.NoError(t, pf.ReadPage(1, dst))
	require.Equal(t, make([]byte, PageSize), dst)
}

func TestPageFile_ReadPastEOFZeroFills(t *testing.T) {
	pf := newPageFile(t, 1)

	dst := make([]byte, PageSize)
	dst[5] = 0x77 // must be cleared by the read
	require.NoError(t, pf.ReadPage(10, dst))
	require.Equal(t, make([]byte, PageSize), dst)
}

func TestPageFile_RejectsWrongBufferSize(t *testing.T) {
	pf := newPageFile(t, 1)

	require.Error(t, pf.ReadPage(0, make([]byte, 16)))
	require.Error(t, pf.WritePage(0, make([]byte, PageSize+1)))
}

func TestPageFile_PageCount(t *testing.T) {
	pf := newPageFile(t, 3)

	n, err := pf.PageCount()
	require.NoError(t, err)
	require.Equal(t, int32(3), n)
}

func TestPageFile_UseAfterClose(t *testing.T) {
	pf := newPageFile(t, 1)
	require.NoError(t, pf.Close())

	require.ErrorIs(t, pf.ReadPage(0, make([]byte, PageSize)), ErrClosed)
	require.ErrorIs(t, pf.WritePage(0, make([]byte, PageSize)), ErrClosed)
	require.ErrorIs(t, pf.Close(), ErrClosed)
}
