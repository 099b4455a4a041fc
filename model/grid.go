package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/conway-grid/rules"
	"github.com/sheikhrachel/conway-grid/utils"
)

// Grid is a fixed-size Game of Life board addressed by (row, col).
// Positions outside the board are never alive.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// CellChange is a pending update produced while scanning a generation.
type CellChange struct {
	Row   int
	Col   int
	State Cell
}

// NewGrid creates a grid from a height x width matrix. The matrix is copied,
// so later writes to cells do not reach the grid.
func NewGrid(width, height int, cells [][]Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	if len(cells) != height {
		actualWidth := 0
		if len(cells) > 0 {
			actualWidth = len(cells[0])
		}
		return nil, errors.WithStack(&ShapeMismatchError{
			ExpectedWidth:  width,
			ExpectedHeight: height,
			ActualWidth:    actualWidth,
			ActualHeight:   len(cells),
			Row:            -1,
		})
	}

	owned := make([][]Cell, height)
	for row := range cells {
		if len(cells[row]) != width {
			return nil, errors.WithStack(&ShapeMismatchError{
				ExpectedWidth:  width,
				ExpectedHeight: height,
				ActualWidth:    len(cells[row]),
				ActualHeight:   len(cells),
				Row:            row,
			})
		}
		for col, c := range cells[row] {
			if c != Dead && c != Alive {
				return nil, errors.WithStack(&InvalidCellTokenError{
					Token:  fmt.Sprintf("%d", uint8(c)),
					Row:    row,
					Column: col,
				})
			}
		}
		owned[row] = append([]Cell(nil), cells[row]...)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  owned,
	}, nil
}

// NewBlankGrid creates a grid of the given size with every cell Dead.
func NewBlankGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBlankGrid] got %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Get returns the state of a cell, Dead when (row, col) is off the board.
func (g *Grid) Get(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Dead
	}
	return g.cells[row][col]
}

// Set updates a cell. Positions off the board are ignored.
func (g *Grid) Set(row, col int, state Cell) {
	if g.inBounds(row, col) && (state == Dead || state == Alive) {
		g.cells[row][col] = state
	}
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col] = Dead
		}
	}
}

// CountNeighbors counts live cells among the up to eight positions around
// (row, col). Positions off the board are skipped.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == Alive {
				count++
			}
		}
	}

	return count
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	g.stepSequential(nil)
}

func (g *Grid) stepSequential(pool *ChangePool) {
	changes := g.collectChanges(0, g.height, pool.Get())
	g.applyChanges(changes)
	pool.Put(changes)
}

// StepParallel advances the grid by one generation, scanning row bands
// concurrently. No cell is written until every band has been scanned.
func (g *Grid) StepParallel(pool *ChangePool) error {
	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		bands         = make([][]CellChange, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			bands[i] = g.collectChanges(startRow, endRow, pool.Get())
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[StepParallel] failed to collect changes")
	}

	for _, band := range bands {
		g.applyChanges(band)
		pool.Put(band)
	}
	return nil
}

// Advance steps the grid according to the configured strategy.
func (g *Grid) Advance(config utils.Config, pool *ChangePool) error {
	if !config.UseMemoryPool {
		pool = nil
	}
	if config.UseParallel {
		return g.StepParallel(pool)
	}
	g.stepSequential(pool)
	return nil
}

// collectChanges reads rows [startRow, endRow) and appends an entry for
// every cell whose state differs in the next generation.
func (g *Grid) collectChanges(startRow, endRow int, changes []CellChange) []CellChange {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			current := g.cells[row][col]
			next := CellFromBool(rules.ApplyConwayRules(g.CountNeighbors(row, col), current.IsAlive()))
			if next != current {
				changes = append(changes, CellChange{Row: row, Col: col, State: next})
			}
		}
	}
	return changes
}

func (g *Grid) applyChanges(changes []CellChange) {
	for _, change := range changes {
		g.cells[change.Row][change.Col] = change.State
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// Snapshot returns a copy of the cell matrix.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.height)
	for row := range g.cells {
		out[row] = append([]Cell(nil), g.cells[row]...)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  g.Snapshot(),
	}
}

// Equal reports whether both grids have the same size and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			h.Write([]byte{byte(g.cells[row][col])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
