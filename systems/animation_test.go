package systems

import (
	"testing"

	"github.com/automoto/robotjump/components"
	"github.com/automoto/robotjump/shared/simconfig"
	"github.com/stretchr/testify/assert"
)

func TestWalkFrame(t *testing.T) {
	tests := []struct {
		repeat int
		want   simconfig.SpriteFrame
	}{
		{0, simconfig.FrameWalk0},
		{1, simconfig.FrameWalk0},
		{3, simconfig.FrameWalk1},
		{15, simconfig.FrameWalk7},
		{16, simconfig.FrameWalk0},
		{33, simconfig.FrameWalk0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WalkFrame(tt.repeat, 2), "repeat %d", tt.repeat)
	}
	assert.Equal(t, simconfig.FrameWalk3, WalkFrame(3, 0))
}

func TestSpriteFor(t *testing.T) {
	cfg := simconfig.Character

	tests := []struct {
		name string
		c    components.CharacterData
		want components.SpriteData
	}{
		{
			name: "idle faces right",
			c:    components.CharacterData{Config: cfg, LastMove: simconfig.MoveIdle},
			want: components.SpriteData{Frame: simconfig.FrameIdle},
		},
		{
			name: "walking left is flipped",
			c:    components.CharacterData{Config: cfg, LastMove: simconfig.MoveLeft, RepeatCount: 5},
			want: components.SpriteData{Frame: simconfig.FrameWalk2, FlipX: true},
		},
		{
			name: "jumping after right",
			c:    components.CharacterData{Config: cfg, LastMove: simconfig.MoveRight, Jump: simconfig.Jumping},
			want: components.SpriteData{Frame: simconfig.FrameJump},
		},
		{
			name: "jumping after idle faces right",
			c:    components.CharacterData{Config: cfg, Jump: simconfig.Jumping},
			want: components.SpriteData{Frame: simconfig.FrameJump},
		},
		{
			name: "falling keeps walk frame",
			c:    components.CharacterData{Config: cfg, LastMove: simconfig.MoveRight, Jump: simconfig.Falling},
			want: components.SpriteData{Frame: simconfig.FrameWalk0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpriteFor(&tt.c))
		})
	}
}
