// Package vox writes MagicaVoxel .vox files.
//
// A .vox file is a RIFF-style container: an 8-byte file header followed by a
// single MAIN chunk whose children describe one static model (SIZE, XYZI,
// RGBA). Every chunk carries its own content length and the total length of
// its children so readers can skip chunks they do not understand.
package vox

// File-level constants. These are fixed by the format and must never change.
const (
	// Magic is the file magic, "VOX " with a trailing space.
	Magic = "VOX "

	// Version is the format version written after the magic.
	Version uint32 = 150

	// FileHeaderSize covers the magic and the version.
	FileHeaderSize = 8

	// ChunkHeaderSize covers the chunk id and the two length fields.
	ChunkHeaderSize = 12

	// PaletteSize is the number of entries an RGBA chunk must hold.
	PaletteSize = 256

	// MaxDimension is the largest grid extent per axis readers accept.
	MaxDimension = 256
)

// ChunkID is the 4-byte ASCII tag at the start of every chunk.
type ChunkID [4]byte

var (
	IDMain = ChunkID{'M', 'A', 'I', 'N'}
	IDSize = ChunkID{'S', 'I', 'Z', 'E'}
	IDXyzi = ChunkID{'X', 'Y', 'Z', 'I'}
	IDRgba = ChunkID{'R', 'G', 'B', 'A'}
)

func (id ChunkID) String() string {
	return string(id[:])
}

// Size is the model grid extent.
type Size struct {
	X, Y, Z uint32
}

// Validate reports whether every axis lies in [0, MaxDimension].
// The encoder never calls it; callers that accept untrusted sizes should.
func (s Size) Validate() error {
	if s.X > MaxDimension || s.Y > MaxDimension || s.Z > MaxDimension {
		return sizeOutOfRange(s)
	}
	return nil
}

// Voxel is a single colored cell. ColorIndex addresses the palette and must
// lie in [1, 256].
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint16
}

// VoxelList is the XYZI payload: a declared count and the records it covers.
type VoxelList struct {
	Count  uint32
	Voxels []Voxel
}

// NewVoxelList returns a list whose declared count matches its records.
func NewVoxelList(voxels []Voxel) VoxelList {
	return VoxelList{Count: uint32(len(voxels)), Voxels: voxels}
}

// Color is one palette entry.
type Color struct {
	R, G, B, A uint8
}

// Scene is everything needed to write one model.
type Scene struct {
	Size    Size
	Voxels  []Voxel
	Palette []Color
}
