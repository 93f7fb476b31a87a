package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_ContainsIsHalfOpen(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"top-left corner", Point{10, 20}, true},
		{"interior", Point{25, 40}, true},
		{"right edge", Point{40, 30}, false},
		{"bottom edge", Point{20, 60}, false},
		{"just inside right edge", Point{39.5, 30}, true},
		{"left of rect", Point{9.9, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.p))
		})
	}
}

func TestRect_OverlapsIsStrict(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.Overlaps(NewRect(5, 5, 10, 10)))
	assert.False(t, r.Overlaps(NewRect(10, 0, 10, 10)), "sharing the right edge")
	assert.False(t, r.Overlaps(NewRect(0, 10, 10, 10)), "sharing the bottom edge")
	assert.False(t, r.Overlaps(NewRect(2, 2, 0, 5)), "zero width never overlaps")
	assert.True(t, r.Overlaps(NewRect(2, 2, 1, 1)), "fully inside")
}

func TestRect_ReferencePoints(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	assert.Equal(t, Point{10, 0}, r.TopRight())
	assert.Equal(t, Point{10, 10}, r.MidRight())
	assert.Equal(t, Point{10, 20}, r.BottomRight())
	assert.Equal(t, Point{0, 10}, r.MidLeft())
	assert.Equal(t, Point{5, 0}, r.MidTop())
	assert.Equal(t, Point{5, 20}, r.MidBottom())
}

func TestRect_Union(t *testing.T) {
	u := NewRect(0, 0, 10, 10).Union(NewRect(-5, 5, 10, 20))
	assert.Equal(t, NewRect(-5, 0, 15, 25), u)

	assert.Equal(t, NewRect(1, 1, 1, 1), Rect{}.Union(NewRect(1, 1, 1, 1)))
}

func TestContacts(t *testing.T) {
	mover := NewRect(0, 0, 20, 40)

	t.Run("wall on the right", func(t *testing.T) {
		wall := NewRect(15, -10, 20, 100)
		assert.True(t, RightContact(mover, wall))
		assert.False(t, LeftContact(mover, wall))
	})

	t.Run("short block hitting the middle of the right side", func(t *testing.T) {
		block := NewRect(18, 15, 20, 5)
		assert.True(t, RightContact(mover, block), "obstacle mid-left inside mover")
		assert.False(t, TopContact(mover, block))
	})

	t.Run("wall on the left", func(t *testing.T) {
		wall := NewRect(-15, -10, 20, 100)
		assert.True(t, LeftContact(mover, wall))
		assert.False(t, RightContact(mover, wall))
	})

	t.Run("ceiling", func(t *testing.T) {
		ceiling := NewRect(-50, -10, 200, 15)
		assert.True(t, TopContact(mover, ceiling))
	})

	t.Run("narrow ceiling between the top corners", func(t *testing.T) {
		beam := NewRect(8, -3, 2, 5)
		assert.True(t, TopContact(mover, beam))
	})
}
