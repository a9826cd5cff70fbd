package board

import (
	"encoding/json"
	"fmt"

	"github.com/block-domino/block-domino/game/tile"
)

// jsonBoard is used for serialization with the json/encoding package
type jsonBoard struct {
	Tiles    []tile.Tile `json:"tiles,omitempty"`
	LeftEnd  *tile.Pip   `json:"leftEnd,omitempty"`
	RightEnd *tile.Pip   `json:"rightEnd,omitempty"`
}

// New creates a board with the line of tiles, returning an error if adjacent tiles do not join.
func New(tiles []tile.Tile) (*Board, error) {
	for i := 1; i < len(tiles); i++ {
		if tiles[i-1].Right != tiles[i].Left {
			return nil, fmt.Errorf("tile %v at index %v does not join %v", tiles[i], i, tiles[i-1])
		}
	}
	b := Board{}
	if len(tiles) > 0 {
		b.tiles = make([]tile.Tile, len(tiles))
		copy(b.tiles, tiles)
	}
	return &b, nil
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// Returns an object containing the line of tiles and the open ends.  The ends are omitted when the board is empty.
func (b Board) MarshalJSON() ([]byte, error) {
	jb := jsonBoard{
		Tiles: b.tiles,
	}
	if left, ok := b.LeftEnd(); ok {
		jb.LeftEnd = &left
	}
	if right, ok := b.RightEnd(); ok {
		jb.RightEnd = &right
	}
	return json.Marshal(jb)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The ends are derived from the tiles.
func (b *Board) UnmarshalJSON(d []byte) error {
	var jb jsonBoard
	if err := json.Unmarshal(d, &jb); err != nil {
		return err
	}
	b2, err := New(jb.Tiles)
	if err != nil {
		return err
	}
	*b = *b2
	return nil
}
