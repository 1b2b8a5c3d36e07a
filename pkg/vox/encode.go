package vox

import (
	"encoding/binary"
	"fmt"
)

// sink is the append-only byte buffer every encoder writes into.
type sink struct {
	buf []byte
}

func newSink(capacity int) *sink {
	return &sink{buf: make([]byte, 0, capacity)}
}

func (s *sink) u32(v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

func (s *sink) bytes(p ...byte) {
	s.buf = append(s.buf, p...)
}

func encodeMain(_ *sink, _ *MainChunk) error {
	return nil
}

func encodeSize(s *sink, size Size) error {
	s.u32(size.X)
	s.u32(size.Y)
	s.u32(size.Z)
	return nil
}

func encodeXyzi(s *sink, list VoxelList) error {
	if uint64(list.Count) != uint64(len(list.Voxels)) {
		return fmt.Errorf("%w: declared %d, got %d", ErrLengthMismatch, list.Count, len(list.Voxels))
	}
	s.u32(list.Count)
	for i, v := range list.Voxels {
		if v.ColorIndex < 1 || v.ColorIndex > PaletteSize {
			return fmt.Errorf("%w: voxel %d at (%d,%d,%d) has index %d", ErrColorIndexOutOfRange, i, v.X, v.Y, v.Z, v.ColorIndex)
		}
		// 256 does not fit a byte; it is stored as its low byte.
		s.bytes(v.X, v.Y, v.Z, byte(v.ColorIndex))
	}
	return nil
}

func encodeRgba(s *sink, palette []Color) error {
	if len(palette) != PaletteSize {
		return fmt.Errorf("%w: got %d", ErrPaletteSizeMismatch, len(palette))
	}
	for _, c := range palette {
		s.bytes(c.R, c.G, c.B, c.A)
	}
	return nil
}

// AppendChunk appends the serialized form of c (header, content, children)
// to dst. On error the returned slice is nil.
func AppendChunk(dst []byte, c Chunk) ([]byte, error) {
	s := &sink{buf: dst}
	if err := writeChunk(s, c); err != nil {
		return nil, err
	}
	return s.buf, nil
}

func writeChunk(s *sink, c Chunk) error {
	id := c.ID()
	s.bytes(id[:]...)
	s.u32(c.ContentByteLength())
	s.u32(c.ChildrenByteLength())

	var err error
	switch c := c.(type) {
	case *MainChunk:
		err = encodeMain(s, c)
	case *SizeChunk:
		err = encodeSize(s, c.size)
	case *XyziChunk:
		err = encodeXyzi(s, c.voxels)
	case *RgbaChunk:
		err = encodeRgba(s, c.palette)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownChunkID, id.String())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	for _, child := range c.Children() {
		if err := writeChunk(s, child); err != nil {
			return err
		}
	}
	return nil
}
