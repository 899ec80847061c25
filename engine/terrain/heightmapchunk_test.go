package terrain

import "testing"

func TestNewHeightmapChunkPopulatesBlocks(t *testing.T) {
	h := NewHeightmapChunk(0, 0, []int{16}, []float32{2}, 1, -2)
	if len(h.BlockChunks()) == 0 {
		t.Fatal("expected at least one block chunk")
	}
}

func TestHeightmapChunkRoutesToCorrectBlock(t *testing.T) {
	h := NewHeightmapChunk(0, 0, []int{16}, []float32{1}, 1, 0)
	for key := range h.BlockChunks() {
		if key[0]%16 != 0 || key[1]%16 != 0 {
			t.Errorf("block origin %v is not aligned to BlockSize", key)
		}
	}
}

func TestHeightmapChunkAtOriginOffset(t *testing.T) {
	h := NewHeightmapChunk(32, 48, []int{16}, []float32{1}, 1, 0)
	if h.X0 != 32 || h.Y0 != 48 {
		t.Errorf("origin = (%d,%d), want (32,48)", h.X0, h.Y0)
	}
	for key := range h.BlockChunks() {
		if key[0] < 32 || key[0] >= 32+HeightmapSize {
			t.Errorf("block x origin %d outside heightmap chunk bounds", key[0])
		}
	}
}

func TestShadeForDecreasesWithHeight(t *testing.T) {
	low := shadeFor(0, 0)
	high := shadeFor(10, 0)
	if high >= low {
		t.Errorf("shade should decrease with elevation: shadeFor(0)=%f shadeFor(10)=%f", low, high)
	}
}
