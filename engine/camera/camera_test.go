package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInViewContainsOrigin(t *testing.T) {
	c := New(0, 0, 64, 64, 8)
	origins := c.InView(16)
	assert.NotEmpty(t, origins, "camera with its top-left at the world origin should see at least one chunk")

	found := false
	for _, o := range origins {
		if o[0] == 0 && o[1] == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected (0,0) among visible origins, got %v", origins)
}

func TestInViewOriginsAreAlignedToStep(t *testing.T) {
	c := New(5, -3, 64, 64, 8)
	for _, o := range c.InView(16) {
		assert.Zero(t, o[0]%16, "x origin %d not aligned to step", o[0])
		assert.Zero(t, o[1]%16, "y origin %d not aligned to step", o[1])
	}
}

func TestChunksInViewFiltersToPresentKeys(t *testing.T) {
	c := New(0, 0, 32, 32, 8)
	chunks := map[[2]int32]string{
		{0, 0}:     "present",
		{1000, 1000}: "far away, never visible",
	}
	got := ChunksInView(c, chunks, 16)
	for _, v := range got {
		assert.NotEqual(t, "far away, never visible", v)
	}
}

func TestInViewWidensWithLargerViewport(t *testing.T) {
	small := New(0, 0, 16, 16, 8)
	large := New(0, 0, 256, 256, 8)
	assert.Greater(t, len(large.InView(16)), len(small.InView(16)))
}
