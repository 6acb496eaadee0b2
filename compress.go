package nbt

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// WriteGzipCompoundTag writes ct to w wrapped in a gzip container. Close is
// always called on the compressor so the trailing footer is written; skipping
// it would leave the document unreadable.
func WriteGzipCompoundTag(w io.Writer, ct *CompoundTag) error {
	zw := gzip.NewWriter(w)
	if err := WriteCompoundTag(zw, ct); err != nil {
		_ = zw.Close()
		return err
	}

	return zw.Close()
}

// WriteZlibCompoundTag writes ct to w wrapped in a zlib container.
func WriteZlibCompoundTag(w io.Writer, ct *CompoundTag) error {
	zw := zlib.NewWriter(w)
	if err := WriteCompoundTag(zw, ct); err != nil {
		_ = zw.Close()
		return err
	}

	return zw.Close()
}

// ReadGzipCompoundTag reads a gzip-compressed NBT document from r.
func ReadGzipCompoundTag(r io.Reader) (*CompoundTag, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, wrapEOF(err)
	}
	defer zr.Close()

	return ReadCompoundTag(zr)
}

// ReadZlibCompoundTag reads a zlib-compressed NBT document from r.
func ReadZlibCompoundTag(r io.Reader) (*CompoundTag, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, wrapEOF(err)
	}
	defer zr.Close()

	return ReadCompoundTag(zr)
}
