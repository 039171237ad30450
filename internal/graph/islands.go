package graph

import "github.com/haijima/dsu/internal/dsu"

// Land marks a land cell in an island grid; any other byte is water.
const Land = '1'

// CountIslands counts the 4-directionally connected regions of land cells in
// grid. Cell (i, j) maps to disjoint-set index i*cols+j. The count starts at
// the number of land cells and drops by one for every union that actually
// merges two regions. An empty grid has zero islands.
//
// Rows are assumed rectangular; ragged input is the parser's problem.
func CountIslands(grid [][]byte) int {
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return 0
	}
	cols := len(grid[0])

	d, _ := dsu.New(rows * cols)
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == Land {
				count++
			}
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if grid[i][j] != Land {
				continue
			}
			// Only look right and down; left and up were handled when
			// those cells were visited.
			if j+1 < cols && grid[i][j+1] == Land {
				if merged := union(d, i*cols+j, i*cols+j+1); merged {
					count--
				}
			}
			if i+1 < rows && grid[i+1][j] == Land {
				if merged := union(d, i*cols+j, (i+1)*cols+j); merged {
					count--
				}
			}
		}
	}
	return count
}
