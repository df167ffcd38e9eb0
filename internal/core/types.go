// Package core provides the fundamental types shared by every part of the
// engine: piece identities, rotation states, directions and cell offsets.
// It contains no dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// PieceType identifies one of the seven tetromino shapes. PieceNone is a
// sentinel used for empty cells and an empty hold slot.
type PieceType int

const (
	PieceI PieceType = iota
	PieceT
	PieceL
	PieceJ
	PieceS
	PieceZ
	PieceO
	PieceNone
)

// PieceCount is the number of playable piece types (excludes PieceNone).
const PieceCount = 7

// Variants returns the seven playable piece types in canonical order.
func Variants() []PieceType {
	return []PieceType{PieceI, PieceT, PieceL, PieceJ, PieceS, PieceZ, PieceO}
}

// String returns a one-letter name for the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceT:
		return "T"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceO:
		return "O"
	case PieceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Rotation is one of the four orientations a piece can be in.
type Rotation int

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

// RotationCount is the number of distinct orientations.
const RotationCount = 4

// Rotations returns all orientations in clockwise order.
func Rotations() []Rotation {
	return []Rotation{R0, R90, R180, R270}
}

// Clockwise returns the next orientation in the clockwise direction.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) % RotationCount
}

// Anticlockwise returns the next orientation in the anticlockwise direction.
func (r Rotation) Anticlockwise() Rotation {
	return (r + RotationCount - 1) % RotationCount
}

// String returns the orientation in degrees.
func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	default:
		return "Unknown"
	}
}

// Direction is a single-cell movement direction on the field.
type Direction int

const (
	Left Direction = iota
	Right
	Down
	Up
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// Offset is a relative (x, y) cell coordinate. X grows rightward and Y grows
// downward, matching the field's top-left origin.
type Offset struct {
	X, Y int
}
