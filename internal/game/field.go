package game

import (
	"github.com/Garsondee/Night-Shift/internal/round"
)

// Field geometry on screen.
const (
	cellPx  = 60
	fieldX  = (mainW - cellPx*round.FieldColumns) / 2
	fieldY  = 110
	fieldPx = cellPx * round.FieldColumns
)

// Decorative cells. They do not block anything.
var (
	obstacleCells = cellSet(22, 23, 24, 32, 33, 34, 42, 43, 44, 52, 53, 54)
	darkZoneCells = cellSet(10, 11, 20, 21, 60, 61, 70, 71)
)

func cellSet(cells ...int) map[int]bool {
	m := make(map[int]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}
	return m
}

// cellAt maps a screen position to a field cell index.
func cellAt(mx, my int) (int, bool) {
	if mx < fieldX || my < fieldY || mx >= fieldX+fieldPx || my >= fieldY+fieldPx {
		return 0, false
	}
	col := (mx - fieldX) / cellPx
	row := (my - fieldY) / cellPx
	return row*round.FieldColumns + col, true
}

// cellOrigin returns the top-left pixel of cell.
func cellOrigin(cell int) (int, int) {
	return fieldX + (cell%round.FieldColumns)*cellPx, fieldY + (cell/round.FieldColumns)*cellPx
}
