package vox

import (
	"io"
)

// Encode serializes s into a complete .vox file.
//
// The whole file is built in memory; when validation fails no bytes are
// returned.
func Encode(s Scene) ([]byte, error) {
	return EncodeTree(BuildTree(s))
}

// EncodeTree serializes an already assembled tree with the file header.
func EncodeTree(root *MainChunk) ([]byte, error) {
	out := newSink(FileHeaderSize + int(TotalByteLength(root)))
	out.bytes(Magic...)
	out.u32(Version)
	if err := writeChunk(out, root); err != nil {
		return nil, err
	}
	return out.buf, nil
}

// Write encodes s and writes the result to w. Nothing is written if encoding
// fails.
func Write(w io.Writer, s Scene) (int64, error) {
	data, err := Encode(s)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
