package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const maxLineBytes = 1 << 20

// Load reads a grid in the text format produced by Grid.String: one row per
// line, cells separated by single spaces, each cell "0" or "1". Trailing
// spaces and blank lines at the end of the input are ignored. Width comes
// from the first non-blank row and height from the number of rows.
func Load(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var rows [][]Cell
	blankRun := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \r")
		if line == "" {
			blankRun++
			continue
		}
		// Blank lines are only tolerated at the end of the input.
		for ; blankRun > 0; blankRun-- {
			rows = append(rows, nil)
		}

		row, err := parseRow(line, len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to read grid source")
	}
	if len(rows) == 0 {
		return nil, errors.WithStack(ErrEmptyGrid)
	}

	// Leading blank lines are kept as empty rows so they surface as a
	// shape mismatch against the first real row.
	width := 0
	for _, row := range rows {
		if len(row) > 0 {
			width = len(row)
			break
		}
	}

	grid, err := NewGrid(width, len(rows), rows)
	if err != nil {
		return nil, errors.Wrap(err, "[Load] failed to build grid")
	}
	return grid, nil
}

func parseRow(line string, rowIndex int) ([]Cell, error) {
	tokens := strings.Split(line, cellSeparator)
	row := make([]Cell, 0, len(tokens))
	for col, token := range tokens {
		cell, err := ParseCell(token)
		if err != nil {
			return nil, errors.WithStack(&InvalidCellTokenError{
				Token:  token,
				Row:    rowIndex,
				Column: col,
			})
		}
		row = append(row, cell)
	}
	return row, nil
}

// LoadFile loads a grid from the file at path
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	grid, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to load grid from file: %+v", path)
	}
	return grid, nil
}

// SaveFile writes the text rendering of g to path, replacing any existing file
func SaveFile(path string, g *Grid) error {
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to write file: %+v", path)
	}
	return nil
}
