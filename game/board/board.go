// Package board stores the line of tiles played in a round and handles queries to read and extend it.
package board

import (
	"github.com/block-domino/block-domino/game/tile"
)

type (
	// Board is the line of tiles that players have placed.
	// The pips of adjacent tiles are equal where they join.
	Board struct {
		tiles []tile.Tile
	}

	// Side is an end of the board.
	Side int
)

const (
	_ Side = iota
	// Left is the start of the line of tiles.
	Left
	// Right is the end of the line of tiles.
	Right
)

// String returns the display value for the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

// Empty determines if no tiles have been placed.
func (b Board) Empty() bool {
	return len(b.tiles) == 0
}

// Len is the number of tiles on the board.
func (b Board) Len() int {
	return len(b.tiles)
}

// Tiles returns a copy of the tiles in order from the left end to the right end.
func (b Board) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

// Copy creates a board with the same tiles that can be changed without changing this board.
func (b Board) Copy() Board {
	if b.Empty() {
		return Board{}
	}
	return Board{tiles: b.Tiles()}
}

// LeftEnd is the open pip value on the left side.  False is returned when the board is empty.
func (b Board) LeftEnd() (tile.Pip, bool) {
	if b.Empty() {
		return 0, false
	}
	return b.tiles[0].Left, true
}

// RightEnd is the open pip value on the right side.  False is returned when the board is empty.
func (b Board) RightEnd() (tile.Pip, bool) {
	if b.Empty() {
		return 0, false
	}
	return b.tiles[len(b.tiles)-1].Right, true
}

// End is the open pip value on the side.
func (b Board) End(s Side) (tile.Pip, bool) {
	switch s {
	case Left:
		return b.LeftEnd()
	case Right:
		return b.RightEnd()
	}
	return 0, false
}

// Place adds the tile to the side of the board, returning the tile as it is oriented on the board.
// The first tile is placed as it is given.  Other tiles must have a pip matching the end of the side;
// they are flipped when needed so the matching pip joins the board and the other pip becomes the new end.
// No action is taken and false is returned if the tile cannot be placed.
func (b *Board) Place(t tile.Tile, s Side) (tile.Tile, bool) {
	if s != Left && s != Right {
		return t, false
	}
	if b.Empty() {
		b.tiles = append(b.tiles, t)
		return t, true
	}
	end, _ := b.End(s)
	if !t.Matches(end) {
		return t, false
	}
	switch s {
	case Left:
		if t.Right != end {
			t.Flip()
		}
		b.tiles = append([]tile.Tile{t}, b.tiles...)
	default:
		if t.Left != end {
			t.Flip()
		}
		b.tiles = append(b.tiles, t)
	}
	return t, true
}

// Clear removes all the tiles from the board.
func (b *Board) Clear() {
	b.tiles = nil
}
