package vox

const (
	sizeContentLen   = 12
	xyziCountLen     = 4
	voxelRecordLen   = 4
	colorRecordLen   = 4
	rgbaContentLen   = PaletteSize * colorRecordLen
	mainContentLen   = 0
	leafChildrenSize = 0
)

// NewSizeChunk builds a SIZE chunk. The extent is not range checked; see
// Size.Validate.
func NewSizeChunk(size Size) *SizeChunk {
	return &SizeChunk{
		chunkHeader: chunkHeader{id: IDSize, contentLen: sizeContentLen, childrenLen: leafChildrenSize},
		size:        size,
	}
}

// NewXyziChunk builds an XYZI chunk. The content length always reflects the
// records actually present; a disagreeing declared count is reported when the
// chunk is written.
func NewXyziChunk(voxels VoxelList) *XyziChunk {
	voxels.Voxels = append([]Voxel(nil), voxels.Voxels...)
	return &XyziChunk{
		chunkHeader: chunkHeader{
			id:          IDXyzi,
			contentLen:  uint32(xyziCountLen + voxelRecordLen*len(voxels.Voxels)),
			childrenLen: leafChildrenSize,
		},
		voxels: voxels,
	}
}

// NewRgbaChunk builds an RGBA chunk. The content length is fixed at 1024
// bytes; a palette that is not exactly 256 entries is rejected when the chunk
// is written.
func NewRgbaChunk(palette []Color) *RgbaChunk {
	return &RgbaChunk{
		chunkHeader: chunkHeader{id: IDRgba, contentLen: rgbaContentLen, childrenLen: leafChildrenSize},
		palette:     append([]Color(nil), palette...),
	}
}

// NewMainChunk builds the root from already constructed children.
func NewMainChunk(size *SizeChunk, xyzi *XyziChunk, rgba *RgbaChunk) *MainChunk {
	children := []Chunk{size, xyzi, rgba}
	var childrenLen uint32
	for _, ch := range children {
		childrenLen += TotalByteLength(ch)
	}
	return &MainChunk{
		chunkHeader: chunkHeader{id: IDMain, contentLen: mainContentLen, childrenLen: childrenLen},
		children:    children,
	}
}

// BuildTree assembles the chunk tree for s, leaves first.
func BuildTree(s Scene) *MainChunk {
	return NewMainChunk(
		NewSizeChunk(s.Size),
		NewXyziChunk(NewVoxelList(s.Voxels)),
		NewRgbaChunk(s.Palette),
	)
}
