package board

import (
	"reflect"
	"testing"

	"github.com/block-domino/block-domino/game/tile"
)

func TestEmptyBoard(t *testing.T) {
	var b Board
	if !b.Empty() {
		t.Errorf("wanted new board to be empty")
	}
	if _, ok := b.LeftEnd(); ok {
		t.Errorf("wanted empty board to have no left end")
	}
	if _, ok := b.RightEnd(); ok {
		t.Errorf("wanted empty board to have no right end")
	}
	if want, got := 0, len(b.Tiles()); want != got {
		t.Errorf("wanted %v tiles, got %v", want, got)
	}
}

func TestPlaceFirstTile(t *testing.T) {
	for _, s := range []Side{Left, Right} {
		var b Board
		tl := tile.Tile{ID: 4, Left: 0, Right: 3}
		got, ok := b.Place(tl, s)
		switch {
		case !ok:
			t.Errorf("wanted first tile to be placed on the %v", s)
		case got != tl:
			t.Errorf("wanted first tile to keep its orientation, got %v", got)
		}
		left, _ := b.LeftEnd()
		right, _ := b.RightEnd()
		if left != 0 || right != 3 {
			t.Errorf("wanted ends 0 and 3, got %v and %v", left, right)
		}
	}
}

func TestPlace(t *testing.T) {
	placeTests := []struct {
		tiles     []tile.Tile
		t         tile.Tile
		Side
		wantOk    bool
		wantTile  tile.Tile
		wantLeft  tile.Pip
		wantRight tile.Pip
	}{
		{ // bad side
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 5, Right: 6},
			wantLeft:  2,
			wantRight: 5,
		},
		{ // no match on left
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 5, Right: 6},
			Side:      Left,
			wantLeft:  2,
			wantRight: 5,
		},
		{ // no match on right
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 2, Right: 6},
			Side:      Right,
			wantLeft:  2,
			wantRight: 5,
		},
		{ // left, flip needed
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 2, Right: 6},
			Side:      Left,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 6, Right: 2},
			wantLeft:  6,
			wantRight: 5,
		},
		{ // left, already oriented
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 6, Right: 2},
			Side:      Left,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 6, Right: 2},
			wantLeft:  6,
			wantRight: 5,
		},
		{ // right, flip needed
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 1, Right: 5},
			Side:      Right,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 5, Right: 1},
			wantLeft:  2,
			wantRight: 1,
		},
		{ // right, already oriented
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 5, Right: 1},
			Side:      Right,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 5, Right: 1},
			wantLeft:  2,
			wantRight: 1,
		},
		{ // double
			tiles:     []tile.Tile{{ID: 1, Left: 2, Right: 5}},
			t:         tile.Tile{ID: 2, Left: 5, Right: 5},
			Side:      Right,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 5, Right: 5},
			wantLeft:  2,
			wantRight: 5,
		},
		{ // both ends the same value, played left
			tiles:     []tile.Tile{{ID: 1, Left: 3, Right: 3}},
			t:         tile.Tile{ID: 2, Left: 3, Right: 4},
			Side:      Left,
			wantOk:    true,
			wantTile:  tile.Tile{ID: 2, Left: 4, Right: 3},
			wantLeft:  4,
			wantRight: 3,
		},
	}
	for i, test := range placeTests {
		b := Board{tiles: test.tiles}
		before := b.Tiles()
		got, ok := b.Place(test.t, test.Side)
		left, _ := b.LeftEnd()
		right, _ := b.RightEnd()
		switch {
		case test.wantOk != ok:
			t.Errorf("Test %v: wanted placement %v, got %v", i, test.wantOk, ok)
		case !ok && !reflect.DeepEqual(before, b.Tiles()):
			t.Errorf("Test %v: wanted board unchanged after rejected placement, got %v", i, b.Tiles())
		case ok && test.wantTile != got:
			t.Errorf("Test %v: wanted placed tile %v, got %v", i, test.wantTile, got)
		case test.wantLeft != left, test.wantRight != right:
			t.Errorf("Test %v: wanted ends %v and %v, got %v and %v", i, test.wantLeft, test.wantRight, left, right)
		}
	}
}

func TestPlaceKeepsJoinsEqual(t *testing.T) {
	var b Board
	plays := []struct {
		t tile.Tile
		Side
	}{
		{tile.Tile{ID: 1, Left: 3, Right: 4}, Right},
		{tile.Tile{ID: 2, Left: 4, Right: 6}, Right},
		{tile.Tile{ID: 3, Left: 1, Right: 3}, Left},
		{tile.Tile{ID: 4, Left: 6, Right: 6}, Right},
		{tile.Tile{ID: 5, Left: 1, Right: 0}, Left},
		{tile.Tile{ID: 6, Left: 2, Right: 6}, Right},
	}
	for i, p := range plays {
		if _, ok := b.Place(p.t, p.Side); !ok {
			t.Fatalf("Test %v: wanted %v to be placed on the %v", i, p.t, p.Side)
		}
	}
	tiles := b.Tiles()
	for i := 1; i < len(tiles); i++ {
		if tiles[i-1].Right != tiles[i].Left {
			t.Errorf("join %v: %v does not match %v", i, tiles[i-1], tiles[i])
		}
	}
	left, _ := b.LeftEnd()
	right, _ := b.RightEnd()
	if left != 0 || right != 2 {
		t.Errorf("wanted ends 0 and 2, got %v and %v", left, right)
	}
}

func TestTilesIsCopy(t *testing.T) {
	var b Board
	b.Place(tile.Tile{ID: 1, Left: 1, Right: 2}, Left)
	tiles := b.Tiles()
	tiles[0].Flip()
	if left, _ := b.LeftEnd(); left != 1 {
		t.Errorf("wanted board to be unchanged when the copy of tiles is changed")
	}
}

func TestClear(t *testing.T) {
	var b Board
	b.Place(tile.Tile{ID: 1, Left: 1, Right: 2}, Left)
	b.Clear()
	switch {
	case !b.Empty():
		t.Errorf("wanted board to be empty after clear")
	case b.Len() != 0:
		t.Errorf("wanted no tiles after clear, got %v", b.Len())
	}
}

func TestEnd(t *testing.T) {
	b := Board{tiles: []tile.Tile{{Left: 1, Right: 2}, {Left: 2, Right: 5}}}
	endTests := []struct {
		Side
		want   tile.Pip
		wantOk bool
	}{
		{},
		{Left, 1, true},
		{Right, 5, true},
	}
	for i, test := range endTests {
		got, ok := b.End(test.Side)
		switch {
		case test.wantOk != ok:
			t.Errorf("Test %v: wanted end ok %v", i, test.wantOk)
		case test.want != got:
			t.Errorf("Test %v: wanted end %v, got %v", i, test.want, got)
		}
	}
}

func TestCopy(t *testing.T) {
	var b Board
	b.Place(tile.Tile{ID: 1, Left: 1, Right: 2}, Left)
	b2 := b.Copy()
	b2.Place(tile.Tile{ID: 2, Left: 2, Right: 2}, Right)
	switch {
	case b.Len() != 1:
		t.Errorf("wanted original board to keep 1 tile, got %v", b.Len())
	case b2.Len() != 2:
		t.Errorf("wanted copy to have 2 tiles, got %v", b2.Len())
	}
}
