package voxel

import "fmt"

// BlockSize (B) is the side length of a block chunk's (x,y) footprint.
// Must divide terrain.HeightmapSize.
const BlockSize = 16

// BlockChunk is the set of voxels whose (x,y) falls within
// [X0, X0+BlockSize) x [Y0, Y0+BlockSize).
type BlockChunk struct {
	X0, Y0 int32
	voxels []Voxel
}

// NewBlockChunk creates an empty chunk with the given origin.
func NewBlockChunk(x0, y0 int32) *BlockChunk {
	return &BlockChunk{X0: x0, Y0: y0}
}

func (c *BlockChunk) contains(v Voxel) bool {
	return v.X >= c.X0 && v.X < c.X0+BlockSize && v.Y >= c.Y0 && v.Y < c.Y0+BlockSize
}

// Add appends v to the chunk. It panics if v lies outside the chunk's
// bounds — this is an internal invariant violation, not a recoverable error.
func (c *BlockChunk) Add(v Voxel) {
	if !c.contains(v) {
		panic(fmt.Sprintf("voxel: block %v outside chunk bounds (%d,%d)+%d", v, c.X0, c.Y0, BlockSize))
	}
	c.voxels = append(c.voxels, v)
}

// ProcessSlices emits all six slices of every voxel in the chunk into
// slices, applying the deduplication rule on each insert. No ordering
// guarantee between voxels is required: correctness follows from the
// painter order being a strict total order.
func (c *BlockChunk) ProcessSlices(slices map[SliceKey]Slice) {
	for _, v := range c.voxels {
		for index := 0; index < 6; index++ {
			key, s := NewSlice(index, v)
			ApplyTo(slices, key, s)
		}
	}
}
