package voxel

import "testing"

func TestBlockChunkAddOutOfBoundsPanics(t *testing.T) {
	c := NewBlockChunk(0, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds voxel")
		}
	}()
	c.Add(Voxel{X: BlockSize, Y: 0, Z: 0})
}

func TestBlockChunkAddInBounds(t *testing.T) {
	c := NewBlockChunk(0, 0)
	c.Add(Voxel{X: 0, Y: 0, Z: 0})
	c.Add(Voxel{X: BlockSize - 1, Y: BlockSize - 1, Z: 0})
}

func TestProcessSlicesKeyUniqueness(t *testing.T) {
	c := NewBlockChunk(0, 0)
	voxels := []Voxel{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}}
	for _, v := range voxels {
		c.Add(v)
	}

	slices := make(map[SliceKey]Slice)
	c.ProcessSlices(slices)

	for key, s := range slices {
		for _, v := range voxels {
			for index := 0; index < 6; index++ {
				otherKey, _ := NewSlice(index, v)
				if otherKey != key {
					continue
				}
				if v.DrawAfter(s.Parent) {
					t.Errorf("slice at key %v is dominated by a voxel that produced the same key", key)
				}
			}
		}
	}
}
