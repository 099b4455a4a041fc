package model

const (
	deadToken  = "0"
	aliveToken = "1"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns the single-character form used by the text format.
func (c Cell) String() string {
	if c == Alive {
		return aliveToken
	}
	return deadToken
}

// IsAlive reports whether the cell is Alive.
func (c Cell) IsAlive() bool {
	return c == Alive
}

// CellFromBool maps true to Alive and false to Dead.
func CellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// ParseCell converts a text token into a Cell. Only "0" and "1" are accepted.
func ParseCell(token string) (Cell, error) {
	switch token {
	case deadToken:
		return Dead, nil
	case aliveToken:
		return Alive, nil
	default:
		return Dead, &InvalidCellTokenError{Token: token, Row: -1, Column: -1}
	}
}
