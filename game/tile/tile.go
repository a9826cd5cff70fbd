// Package tile contains the dominoes that players hold and place on the board.
package tile

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Tile is a domino: a pair of pips.
	// Left and Right are the current orientation of the pips.  Flipping a tile swaps them but keeps the ID.
	Tile struct {
		ID    ID  `json:"id"`
		Left  Pip `json:"l"`
		Right Pip `json:"r"`
	}

	// ID is the id of a tile.  Each unordered pair of pips has a single id in the set.
	ID int

	// Pip is the number of dots on one end of a tile.
	Pip int
)

const (
	// MinPip is the smallest number of pips on an end of a tile.
	MinPip Pip = 0
	// MaxPip is the largest number of pips on an end of a tile.
	MaxPip Pip = 6
	// SetSize is the number of tiles in a double-six set.
	SetSize = 28
)

// New creates a new Tile, returning an error if either pip is out of range.
func New(id ID, left, right int) (*Tile, error) {
	l, err := newPip(left)
	if err != nil {
		return nil, err
	}
	r, err := newPip(right)
	if err != nil {
		return nil, err
	}
	t := Tile{
		ID:    id,
		Left:  l,
		Right: r,
	}
	return &t, nil
}

// newPip validates the pip count.
func newPip(v int) (Pip, error) {
	p := Pip(v)
	if p < MinPip || MaxPip < p {
		return 0, fmt.Errorf("pip must be between %v and %v: %v", MinPip, MaxPip, v)
	}
	return p, nil
}

// Set creates the double-six set: one tile for each unordered pair of pips, with ids counting up from 1.
func Set() []Tile {
	tiles := make([]Tile, 0, SetSize)
	id := ID(1)
	for i := MinPip; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			tiles = append(tiles, Tile{ID: id, Left: i, Right: j})
			id++
		}
	}
	return tiles
}

// IsDouble determines if both ends of the tile have the same pips.
func (t Tile) IsDouble() bool {
	return t.Left == t.Right
}

// Total is the sum of the pips on both ends of the tile.
func (t Tile) Total() int {
	return int(t.Left + t.Right)
}

// Matches determines if either end of the tile has the pips.
func (t Tile) Matches(p Pip) bool {
	return t.Left == p || t.Right == p
}

// Flip swaps the ends of the tile.
func (t *Tile) Flip() {
	t.Left, t.Right = t.Right, t.Left
}

// SamePips determines if the tiles have the same pips, in any orientation.
func (t Tile) SamePips(other Tile) bool {
	return (t.Left == other.Left && t.Right == other.Right) ||
		(t.Left == other.Right && t.Right == other.Left)
}

// String renders the tile as [left|right].
func (t Tile) String() string {
	return "[" + strconv.Itoa(int(t.Left)) + "|" + strconv.Itoa(int(t.Right)) + "]"
}

// Parse reads the pips of a tile from text such as "3-5", "3|5" or "[3|5]".
// The returned tile has no id; use SamePips to find the matching tile in a hand.
func Parse(s string) (*Tile, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '|' || r == ' ' || r == ','
	})
	if len(parts) != 2 {
		return nil, fmt.Errorf("tile must have two pip values: %q", s)
	}
	var pips [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing tile pip %q: %w", p, err)
		}
		pips[i] = v
	}
	return New(0, pips[0], pips[1])
}
