package vox

// Chunk is a node of the chunk tree.
//
// The set of implementations is closed: MainChunk, SizeChunk, XyziChunk and
// RgbaChunk. Length fields are computed when a chunk is constructed and never
// change afterwards, so the header a chunk declares always matches the bytes
// it serializes to.
type Chunk interface {
	ID() ChunkID
	ContentByteLength() uint32
	ChildrenByteLength() uint32
	Children() []Chunk

	sealed()
}

// chunkHeader holds the fields shared by every chunk kind.
type chunkHeader struct {
	id          ChunkID
	contentLen  uint32
	childrenLen uint32
}

func (h *chunkHeader) ID() ChunkID                { return h.id }
func (h *chunkHeader) ContentByteLength() uint32  { return h.contentLen }
func (h *chunkHeader) ChildrenByteLength() uint32 { return h.childrenLen }
func (h *chunkHeader) sealed()                    {}

// TotalByteLength returns the number of bytes c serializes to: its 12-byte
// header, its content and every descendant.
func TotalByteLength(c Chunk) uint32 {
	return ChunkHeaderSize + c.ContentByteLength() + c.ChildrenByteLength()
}

// MainChunk is the root container. It has no content of its own.
type MainChunk struct {
	chunkHeader
	children []Chunk
}

// Children returns the SIZE, XYZI and RGBA chunks in file order.
func (c *MainChunk) Children() []Chunk {
	out := make([]Chunk, len(c.children))
	copy(out, c.children)
	return out
}

// SizeChunk carries the model extent.
type SizeChunk struct {
	chunkHeader
	size Size
}

func (c *SizeChunk) Size() Size        { return c.size }
func (c *SizeChunk) Children() []Chunk { return nil }

// XyziChunk carries the sparse voxel list.
type XyziChunk struct {
	chunkHeader
	voxels VoxelList
}

func (c *XyziChunk) Voxels() VoxelList { return c.voxels }
func (c *XyziChunk) Children() []Chunk { return nil }

// RgbaChunk carries the palette.
type RgbaChunk struct {
	chunkHeader
	palette []Color
}

func (c *RgbaChunk) Palette() []Color  { return c.palette }
func (c *RgbaChunk) Children() []Chunk { return nil }
