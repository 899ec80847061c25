// Package isoworld is a CPU software renderer for an infinite, procedurally
// generated voxel world drawn in axonometric projection. It owns a scene, a
// camera, and a canvas, and exposes the stateful operations a host display
// loop drives every frame: New, Draw, GetCanvas, Shift, ShiftX, ShiftY.
//
// The renderer is single-threaded and fully synchronous: callers must not
// invoke two operations on the same State concurrently.
package isoworld

import (
	"fmt"

	"github.com/quevivasbien/isometric-world/engine/camera"
	"github.com/quevivasbien/isometric-world/engine/raster"
	"github.com/quevivasbien/isometric-world/engine/scene"
	"github.com/quevivasbien/isometric-world/rlog"
)

// State owns the scene, camera, and canvas for one renderer instance.
type State struct {
	scene  *scene.Scene
	camera *camera.Camera
	canvas *raster.Grid
	log    rlog.Logger
}

// New validates (periods, amplitudes) and constructs a renderer with an
// empty scene, a camera at world origin (0,0), and a blank canvas.
// minHeight is derived as -max(amplitudes). Returns an error rather than
// panicking: a bad configuration never produces a state.
func New(periods []int, amplitudes []float32, pixelHeight, pixelWidth int, scale float32, seed int32) (*State, error) {
	if len(periods) != len(amplitudes) {
		return nil, fmt.Errorf("isoworld: len(periods)=%d != len(amplitudes)=%d", len(periods), len(amplitudes))
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("isoworld: periods/amplitudes must not be empty")
	}
	maxAmp := amplitudes[0]
	for _, p := range periods {
		if p <= 0 {
			return nil, fmt.Errorf("isoworld: period %d must be positive", p)
		}
		if heightmapSize%p != 0 {
			return nil, fmt.Errorf("isoworld: period %d must divide heightmap size %d", p, heightmapSize)
		}
	}
	for _, a := range amplitudes {
		if a > maxAmp {
			maxAmp = a
		}
	}

	minHeight := int32(-maxAmp)
	return &State{
		scene:  scene.New(periods, amplitudes, seed, minHeight),
		camera: camera.New(0, 0, pixelWidth, pixelHeight, scale),
		canvas: raster.NewGrid(pixelHeight, pixelWidth),
		log:    rlog.Noop{},
	}, nil
}

// SetLogger installs a logger used for full-redraw-fallback diagnostics;
// it is forwarded to the scene for chunk materialization/culling logs.
func (s *State) SetLogger(l rlog.Logger) {
	s.log = l
	s.scene.SetLogger(l)
}

// Draw replaces the canvas with a fresh render of the current camera view.
func (s *State) Draw() {
	s.canvas = s.scene.Draw(s.camera)
}

// GetCanvas returns the canvas as a flat RGBA byte vector of length
// 4*height*width, row-major, alpha always 255.
func (s *State) GetCanvas() []byte {
	return s.canvas.Bytes()
}

// Shift translates the camera origin without repainting; callers must
// call Draw to realize the new view.
func (s *State) Shift(dx, dy int32) {
	s.camera.OX += dx
	s.camera.OY += dy
}

// ShiftY translates the camera origin's y by dy and incrementally
// repaints: if |dy| >= camera height, falls back to a full redraw at the
// new origin. Otherwise only the newly exposed strip of height |dy| is
// rendered and the existing canvas is displaced to make room for it.
func (s *State) ShiftY(dy int32) {
	newOY := s.camera.OY + dy

	if abs32(dy) >= int32(s.camera.Height) {
		s.log.Debugf("shift_y(%d) exceeds camera height %d, falling back to full redraw", dy, s.camera.Height)
		s.camera.OY = newOY
		s.Draw()
		return
	}
	if dy == 0 {
		s.camera.OY = newOY
		return
	}

	if dy < 0 {
		strip := camera.New(s.camera.OX, newOY, s.camera.Width, int(-dy), s.camera.Scale)
		s.canvas.DisplaceAbove(s.scene.Draw(strip))
	} else {
		strip := camera.New(s.camera.OX, s.camera.OY+int32(s.camera.Height), s.camera.Width, int(dy), s.camera.Scale)
		s.canvas.DisplaceBelow(s.scene.Draw(strip))
	}
	s.camera.OY = newOY
}

// ShiftX is the horizontal counterpart to ShiftY, using DisplaceLeft/Right.
func (s *State) ShiftX(dx int32) {
	newOX := s.camera.OX + dx

	if abs32(dx) >= int32(s.camera.Width) {
		s.log.Debugf("shift_x(%d) exceeds camera width %d, falling back to full redraw", dx, s.camera.Width)
		s.camera.OX = newOX
		s.Draw()
		return
	}
	if dx == 0 {
		s.camera.OX = newOX
		return
	}

	if dx < 0 {
		strip := camera.New(newOX, s.camera.OY, int(-dx), s.camera.Height, s.camera.Scale)
		s.canvas.DisplaceLeft(s.scene.Draw(strip))
	} else {
		strip := camera.New(s.camera.OX+int32(s.camera.Width), s.camera.OY, int(dx), s.camera.Height, s.camera.Scale)
		s.canvas.DisplaceRight(s.scene.Draw(strip))
	}
	s.camera.OX = newOX
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// heightmapSize mirrors terrain.HeightmapSize without importing the
// terrain package directly from the public API surface.
const heightmapSize = 64
