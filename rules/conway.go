package rules

const (
	// BirthNeighbors is the live-neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// SurvivalNeighbors is the extra live-neighbor count that keeps a live cell alive.
	SurvivalNeighbors = 2
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == SurvivalNeighbors) || neighbors == BirthNeighbors
}
