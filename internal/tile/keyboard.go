package tile

// Direction is an arrow-key direction for keyboard tiling.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// transitionKey pairs a current position with a pressed direction.
type transitionKey struct {
	from Position
	dir  Direction
}

// transitions encodes progressive subdivision and restoration: halves split
// into quarters on the perpendicular axis, quarters slide toward their
// neighbor or expand back to the enclosing half, and Maximize bridges to
// Fullscreen (up) and Restore (down). Restore is transient and never a
// source state. Unmapped pairs are deliberate no-ops.
var transitions = map[transitionKey]Position{
	// Untiled.
	{PositionNone, DirLeft}:  LeftHalf,
	{PositionNone, DirRight}: RightHalf,
	{PositionNone, DirUp}:    Maximize,

	// Halves: perpendicular directions subdivide, forward flips sides.
	{LeftHalf, DirUp}:    TopLeftQuarter,
	{LeftHalf, DirDown}:  BottomLeftQuarter,
	{LeftHalf, DirRight}: RightHalf,

	{RightHalf, DirUp}:   TopRightQuarter,
	{RightHalf, DirDown}: BottomRightQuarter,
	{RightHalf, DirLeft}: LeftHalf,

	{TopHalf, DirLeft}:  TopLeftQuarter,
	{TopHalf, DirRight}: TopRightQuarter,
	{TopHalf, DirDown}:  BottomHalf,

	{BottomHalf, DirLeft}:  BottomLeftQuarter,
	{BottomHalf, DirRight}: BottomRightQuarter,
	{BottomHalf, DirUp}:    TopHalf,

	// Maximize bridges to fullscreen and restore.
	{Maximize, DirUp}:    Fullscreen,
	{Maximize, DirDown}:  Restore,
	{Maximize, DirLeft}:  LeftHalf,
	{Maximize, DirRight}: RightHalf,

	// Fullscreen only comes back down.
	{Fullscreen, DirDown}: Restore,

	// Quarters: toward the neighbor slides, away from center expands.
	{TopLeftQuarter, DirRight}: TopRightQuarter,
	{TopLeftQuarter, DirDown}:  BottomLeftQuarter,
	{TopLeftQuarter, DirLeft}:  LeftHalf,
	{TopLeftQuarter, DirUp}:    TopHalf,

	{TopRightQuarter, DirLeft}:  TopLeftQuarter,
	{TopRightQuarter, DirDown}:  BottomRightQuarter,
	{TopRightQuarter, DirRight}: RightHalf,
	{TopRightQuarter, DirUp}:    TopHalf,

	{BottomLeftQuarter, DirRight}: BottomRightQuarter,
	{BottomLeftQuarter, DirUp}:    TopLeftQuarter,
	{BottomLeftQuarter, DirLeft}:  LeftHalf,
	{BottomLeftQuarter, DirDown}:  BottomHalf,

	{BottomRightQuarter, DirLeft}:  BottomLeftQuarter,
	{BottomRightQuarter, DirUp}:    TopRightQuarter,
	{BottomRightQuarter, DirRight}: RightHalf,
	{BottomRightQuarter, DirDown}:  BottomHalf,
}

// Transition returns the next tile position for an arrow press given the
// window's current position (PositionNone when untiled). It is total: any
// unmapped pair returns (PositionNone, false), meaning "do nothing".
func Transition(from Position, dir Direction) (Position, bool) {
	if from == Restore {
		return PositionNone, false
	}
	next, ok := transitions[transitionKey{from, dir}]
	return next, ok
}
