package terrain

import (
	"math"

	"github.com/quevivasbien/isometric-world/engine/raster"
	"github.com/quevivasbien/isometric-world/engine/voxel"
)

// HeightmapSize (H) is the side length of a coarse heightmap tile in
// (x, y). Must be a multiple of voxel.BlockSize and a multiple of every
// permitted noise period.
const HeightmapSize = 64

// HeightmapChunk is one H x H coarse tile of terrain: a dense grid of
// block chunks, built in one pass from noise on first use.
type HeightmapChunk struct {
	X0, Y0 int32
	blocks map[[2]int32]*voxel.BlockChunk
}

// NewHeightmapChunk samples noise over [x0, x0+H) x [y0, y0+H), floors
// each sample to an elevation z_top, and emits a contiguous voxel column
// from minHeight to z_top for every (x, y), routed to the block chunk
// whose bounds contain it.
func NewHeightmapChunk(x0, y0 int32, periods []int, amplitudes []float32, seed int32, minHeight int32) *HeightmapChunk {
	if HeightmapSize%voxel.BlockSize != 0 {
		panic("terrain: heightmap size must be a multiple of block size")
	}

	samples := Sample(periods, amplitudes, seed, x0, y0, HeightmapSize, HeightmapSize)

	h := &HeightmapChunk{
		X0:     x0,
		Y0:     y0,
		blocks: make(map[[2]int32]*voxel.BlockChunk),
	}

	for row := 0; row < HeightmapSize; row++ {
		y := y0 + int32(row)
		for col := 0; col < HeightmapSize; col++ {
			x := x0 + int32(col)
			zTop := int32(math.Floor(float64(samples[row][col])))
			for z := minHeight; z <= zTop; z++ {
				shade := shadeFor(z, minHeight)
				h.add(voxel.Voxel{X: x, Y: y, Z: z, Color: raster.Color{R: shade, G: shade, B: shade}})
			}
		}
	}

	return h
}

// shadeFor computes the uniform grayscale shade for elevation z relative
// to minHeight: 1 / (1 + z - minHeight)^0.35.
func shadeFor(z, minHeight int32) float32 {
	return float32(1 / math.Pow(float64(1+z-minHeight), 0.35))
}

func (h *HeightmapChunk) add(v voxel.Voxel) {
	bx0 := floorDiv(v.X, voxel.BlockSize) * voxel.BlockSize
	by0 := floorDiv(v.Y, voxel.BlockSize) * voxel.BlockSize
	key := [2]int32{bx0, by0}
	block, ok := h.blocks[key]
	if !ok {
		block = voxel.NewBlockChunk(bx0, by0)
		h.blocks[key] = block
	}
	block.Add(v)
}

// BlockChunks returns every block chunk in this heightmap chunk.
func (h *HeightmapChunk) BlockChunks() map[[2]int32]*voxel.BlockChunk {
	return h.blocks
}

// BlockChunkAt returns the block chunk at the given origin, if present.
func (h *HeightmapChunk) BlockChunkAt(x0, y0 int32) (*voxel.BlockChunk, bool) {
	b, ok := h.blocks[[2]int32{x0, y0}]
	return b, ok
}
