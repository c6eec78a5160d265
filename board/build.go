package board

import "fmt"

// Build parses spec text into a ready-to-run Board, mirroring chiplib.py's
// setup(): read the grid, construct every element, register the ones that
// fire once per cycle.
func Build(text string, mode StorageMode) (*Board, []Warning, error) {
	grid, warnings := ReadSpec(text)

	cells := make([][][]Element, len(grid))
	for z, layer := range grid {
		cells[z] = make([][]Element, len(layer))
		for y, row := range layer {
			cells[z][y] = make([]Element, len(row))
			for x, r := range row {
				e, err := NewElement(r, x, y, z)
				if err != nil {
					return nil, warnings, fmt.Errorf("board: layer %d row %d col %d: %w", z, y, x, err)
				}
				cells[z][y][x] = e
			}
		}
	}

	b := NewBoard(mode)
	b.Initialize(cells)
	return b, warnings, nil
}
