package rules

const (
	// SurviveLow and SurviveHigh bound the neighbour counts a live cell survives with.
	SurviveLow  = 2
	SurviveHigh = 3
	// Birth is the exact neighbour count that brings a dead cell to life.
	Birth = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbours and dies otherwise (underpopulation below 2,
overpopulation above 3). A dead cell comes alive with exactly 3 live neighbours.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveLow && neighbors <= SurviveHigh
	}
	return neighbors == Birth
}
