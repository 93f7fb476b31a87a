package geom

// Contact tests decide which side of a moving box an obstacle touches. Each side
// is checked with the mover's two corners and midpoint on that side falling inside
// the obstacle, plus the obstacle's facing midpoint falling inside the mover. The
// last check catches obstacles shorter (or narrower) than the mover, whose edge
// slides between the mover's reference points.
//
// Callers only pass obstacles that already overlap the mover; an edge-adjacent
// obstacle would otherwise register through the half-open right/bottom points.

// RightContact reports whether obstacle touches the right side of mover.
func RightContact(mover, obstacle Rect) bool {
	return obstacle.Contains(mover.TopRight()) ||
		obstacle.Contains(mover.BottomRight()) ||
		obstacle.Contains(mover.MidRight()) ||
		mover.Contains(obstacle.MidLeft())
}

// LeftContact reports whether obstacle touches the left side of mover.
func LeftContact(mover, obstacle Rect) bool {
	return obstacle.Contains(mover.TopLeft()) ||
		obstacle.Contains(mover.BottomLeft()) ||
		obstacle.Contains(mover.MidLeft()) ||
		mover.Contains(obstacle.MidRight())
}

// TopContact reports whether obstacle touches the top of mover.
func TopContact(mover, obstacle Rect) bool {
	return obstacle.Contains(mover.TopRight()) ||
		obstacle.Contains(mover.TopLeft()) ||
		obstacle.Contains(mover.MidTop()) ||
		mover.Contains(obstacle.MidBottom())
}
