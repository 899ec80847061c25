// Package scene owns the map of heightmap chunks keyed on coarse origin,
// lazily materializing them from noise and culling them when the chunk
// count exceeds capacity.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/quevivasbien/isometric-world/engine/camera"
	"github.com/quevivasbien/isometric-world/engine/raster"
	"github.com/quevivasbien/isometric-world/engine/terrain"
	"github.com/quevivasbien/isometric-world/engine/voxel"
	"github.com/quevivasbien/isometric-world/rlog"
)

// Capacity (C) is the chunk count above which a draw pass culls every
// heightmap chunk not currently in view.
const Capacity = 128

// Scene is a lazily-populated, capacity-bounded map of heightmap chunks.
type Scene struct {
	Periods    []int
	Amplitudes []float32
	Seed       int32
	MinHeight  int32

	chunks map[[2]int32]*terrain.HeightmapChunk
	log    rlog.Logger
}

// New creates an empty scene with the given noise parameters.
func New(periods []int, amplitudes []float32, seed int32, minHeight int32) *Scene {
	return &Scene{
		Periods:    periods,
		Amplitudes: amplitudes,
		Seed:       seed,
		MinHeight:  minHeight,
		chunks:     make(map[[2]int32]*terrain.HeightmapChunk),
		log:        rlog.Noop{},
	}
}

// SetLogger installs a logger for chunk materialization/culling diagnostics.
func (s *Scene) SetLogger(l rlog.Logger) {
	s.log = l
}

// Chunks exposes the current chunk map (read-only use expected).
func (s *Scene) Chunks() map[[2]int32]*terrain.HeightmapChunk {
	return s.chunks
}

// setChunks ensures every coarse origin visible through cam is
// materialized. If the chunk count would exceed Capacity, it instead
// rebuilds the chunk map from scratch containing only the currently
// visible origins, reusing chunks that already exist.
func (s *Scene) setChunks(cam *camera.Camera) {
	visible := cam.InView(terrain.HeightmapSize)

	missing := 0
	for _, origin := range visible {
		if _, ok := s.chunks[origin]; !ok {
			missing++
		}
	}
	if len(s.chunks)+missing > Capacity {
		s.setChunksAndStripOld(visible)
		return
	}

	for _, origin := range visible {
		if _, ok := s.chunks[origin]; ok {
			continue
		}
		s.chunks[origin] = s.materialize(origin)
	}
}

// setChunksAndStripOld builds a fresh chunk map containing only the given
// visible origins, moving over chunks that already exist and creating the
// rest. Chunks not in visible are dropped.
func (s *Scene) setChunksAndStripOld(visible [][2]int32) {
	fresh := make(map[[2]int32]*terrain.HeightmapChunk, len(visible))
	for _, origin := range visible {
		if chunk, ok := s.chunks[origin]; ok {
			fresh[origin] = chunk
			continue
		}
		fresh[origin] = s.materialize(origin)
	}
	s.log.Debugf("culled scene from %d to %d chunks", len(s.chunks), len(fresh))
	s.chunks = fresh
}

func (s *Scene) materialize(origin [2]int32) *terrain.HeightmapChunk {
	s.log.Debugf("materializing heightmap chunk at (%d, %d)", origin[0], origin[1])
	return terrain.NewHeightmapChunk(origin[0], origin[1], s.Periods, s.Amplitudes, s.Seed, s.MinHeight)
}

// Draw materializes/culls chunks as needed, then rasterizes every in-view
// slice onto a fresh grid sized to cam's viewport.
func (s *Scene) Draw(cam *camera.Camera) *raster.Grid {
	s.setChunks(cam)

	slices := make(map[voxel.SliceKey]voxel.Slice)
	for _, hchunk := range camera.ChunksInView(cam, s.chunks, terrain.HeightmapSize) {
		for _, bchunk := range camera.ChunksInView(cam, hchunk.BlockChunks(), voxel.BlockSize) {
			bchunk.ProcessSlices(slices)
		}
	}

	grid := raster.NewGrid(cam.Height, cam.Width)
	origin := mgl32.Vec2{float32(cam.OX), float32(cam.OY)}
	for _, sl := range slices {
		sl.Draw(cam.Proj, origin, grid)
	}
	return grid
}
