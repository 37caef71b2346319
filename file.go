package mfaf

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

// mmapSource adapts a memory-mapped file into an io.ReaderAt, so lazy
// decode pages content in on demand through the OS rather than through
// a Go-managed read buffer.
type mmapSource struct {
	data mmap.MMap
}

func (m mmapSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(m.data)) {
		return 0, mfaferr.New(mfaferr.KindRange, "mmap read offset out of bounds")
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// LoadFile opens path, memory-maps it read-only, and parses it in lazy
// mode. The returned close function unmaps the file and must be called
// once the Archive is no longer needed; it is safe to call even after
// LoadFile has returned an error alongside a nil Archive.
func LoadFile(path string, opts ...Option) (archive *Archive, closeFn func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, func() error { return nil }, mfaferr.Wrap(mfaferr.KindSize, "opening archive file", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, func() error { return nil }, mfaferr.Wrap(mfaferr.KindSize, "statting archive file", err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, func() error { return nil }, mfaferr.Wrap(mfaferr.KindSize, "memory-mapping archive file", err)
	}
	closeFn = func() error { return data.Unmap() }

	archive, err = Load(mmapSource{data: data}, info.Size(), opts...)
	if err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, err
	}
	return archive, closeFn, nil
}
