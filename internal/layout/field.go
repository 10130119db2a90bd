package layout

import (
	"math"

	"github.com/fchimpan/gh-color-switch/internal/game"
)

// CellW is the number of terminal columns per world unit. Terminal cells are
// roughly twice as tall as they are wide, so this keeps circles round.
const CellW = 2

const (
	minCols = 20
	minRows = 12
)

// Grid maps a terminal-sized playfield onto world coordinates. One world
// unit is one row tall and CellW columns wide; world Y grows upward from
// the bottom row.
type Grid struct {
	Cols  int
	Rows  int
	Field game.Field
}

// Build sizes the playfield for a terminal of w x h cells. It leaves room
// for the HUD lines above and a blank line below, as the breaker field did.
//
// The switch diameter is a third of the field width, capped so that the
// ball has room to fall. The switch sits one diameter above the floor and
// the ball spawns one diameter below the ceiling.
func Build(w, h int) Grid {
	cols := max(w-2, minCols)
	rows := max(h-4, minRows)

	width := float64(cols) / CellW
	height := float64(rows)

	d := width / 3
	d = math.Min(d, height/4)
	d = math.Max(d, 2)

	return Grid{
		Cols: cols,
		Rows: rows,
		Field: game.Field{
			Width:        width,
			Height:       height,
			SwitchRadius: d / 2,
			SwitchPos:    game.Vec{X: width / 2, Y: d},
			SpawnPos:     game.Vec{X: width / 2, Y: height - d},
		},
	}
}

// Cell returns the terminal cell (column, row from the top) that contains p.
func (g Grid) Cell(p game.Vec) (int, int) {
	col := int(math.Floor(p.X * CellW))
	row := g.Rows - 1 - int(math.Floor(p.Y))
	return col, row
}

// Center returns the world position of the center of a terminal cell.
func (g Grid) Center(col, row int) game.Vec {
	return game.Vec{
		X: (float64(col) + 0.5) / CellW,
		Y: float64(g.Rows-1-row) + 0.5,
	}
}

func (g Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}
