package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shapeshift/internal/scene"
)

func TestHiddenByDefault(t *testing.T) {
	d := New()
	assert.Empty(t, d.Lines(Status{Active: scene.Front}, func() int32 { return 60 }))
}

func TestFPSIsThrottled(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	fps := int32(60)
	calls := 0
	read := func() int32 { calls++; return fps }

	assert.Equal(t, []string{"FPS: 60"}, d.Lines(Status{}, read))
	fps = 30
	for i := 0; i < updateInterval-2; i++ {
		assert.Equal(t, []string{"FPS: 60"}, d.Lines(Status{}, read))
	}
	assert.Equal(t, []string{"FPS: 30"}, d.Lines(Status{}, read))
	assert.Equal(t, 2, calls)
}

func TestActiveWall(t *testing.T) {
	d := New()
	d.SetShowActiveWall(true)
	none := func() int32 { return 0 }

	assert.Equal(t, []string{"Wall: none", "Time: 0.0s  Frame: 0"}, d.Lines(Status{Active: scene.NoWall}, none))
	assert.Equal(t, []string{"Wall: top", "Time: 2.5s  Frame: 152"}, d.Lines(Status{Active: scene.Top, Elapsed: 2.54, Frames: 152}, none))
}
