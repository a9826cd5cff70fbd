// Package rules decides which tiles may be played.
// The functions do not change the hands or boards they are given.
package rules

import (
	"github.com/block-domino/block-domino/game/board"
	"github.com/block-domino/block-domino/game/tile"
)

// CanOpen determines if the tile may start a round, the first tile on an empty board.
// If the hand has any doubles, only the highest double may open.
// Otherwise, only the tiles with the highest total of pips may open.
// The tile must be in the hand.
func CanOpen(t tile.Tile, hand []tile.Tile) bool {
	if !inHand(t, hand) {
		return false
	}
	best, ok := highestDouble(hand)
	if ok {
		return t.IsDouble() && t.Left == best.Left
	}
	return t.Total() == highestTotal(hand)
}

// OpeningTile is the first tile in the hand that may start a round.
func OpeningTile(hand []tile.Tile) (tile.Tile, bool) {
	for _, t := range hand {
		if CanOpen(t, hand) {
			return t, true
		}
	}
	return tile.Tile{}, false
}

// CanPlay determines if the tile matches either end of a board that has tiles.
func CanPlay(t tile.Tile, b board.Board) bool {
	return CanPlaySide(t, b, board.Left) || CanPlaySide(t, b, board.Right)
}

// CanPlaySide determines if the tile matches the end of the side of a board that has tiles.
func CanPlaySide(t tile.Tile, b board.Board, s board.Side) bool {
	end, ok := b.End(s)
	return ok && t.Matches(end)
}

// PlayableSides are the sides of the board the tile can be placed on.
// Both sides are returned for a legal opening tile on an empty board.
func PlayableSides(t tile.Tile, hand []tile.Tile, b board.Board) []board.Side {
	if b.Empty() {
		if CanOpen(t, hand) {
			return []board.Side{board.Left, board.Right}
		}
		return nil
	}
	var sides []board.Side
	for _, s := range []board.Side{board.Left, board.Right} {
		if CanPlaySide(t, b, s) {
			sides = append(sides, s)
		}
	}
	return sides
}

// Legal determines if the tile from the hand can be played on the board.
// The opening rule applies when the board is empty.
func Legal(t tile.Tile, hand []tile.Tile, b board.Board) bool {
	if b.Empty() {
		return CanOpen(t, hand)
	}
	return CanPlay(t, b)
}

// LegalTiles returns the tiles in the hand that can be played, in hand order.
func LegalTiles(hand []tile.Tile, b board.Board) []tile.Tile {
	var tiles []tile.Tile
	for _, t := range hand {
		if Legal(t, hand, b) {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// HasPlayableTile determines if any tile in the hand can be played.
// Any non-empty hand can play on an empty board.
func HasPlayableTile(hand []tile.Tile, b board.Board) bool {
	if b.Empty() {
		return len(hand) > 0
	}
	for _, t := range hand {
		if CanPlay(t, b) {
			return true
		}
	}
	return false
}

// NextPlayableTile picks the tile and side an automated player should play.
// On an empty board, the first tile that can open is played on the left.
// Otherwise, the first tile in hand order matching the left end is picked before the first tile matching the right end.
func NextPlayableTile(hand []tile.Tile, b board.Board) (tile.Tile, board.Side, bool) {
	if b.Empty() {
		t, ok := OpeningTile(hand)
		return t, board.Left, ok
	}
	for _, s := range []board.Side{board.Left, board.Right} {
		for _, t := range hand {
			if CanPlaySide(t, b, s) {
				return t, s, true
			}
		}
	}
	return tile.Tile{}, 0, false
}

// PipSum is the total of the pips on the tiles.
func PipSum(tiles []tile.Tile) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Total()
	}
	return sum
}

// highestDouble finds the double with the most pips.
func highestDouble(hand []tile.Tile) (tile.Tile, bool) {
	var best tile.Tile
	found := false
	for _, t := range hand {
		if t.IsDouble() && (!found || t.Left > best.Left) {
			best = t
			found = true
		}
	}
	return best, found
}

// highestTotal is the largest total of pips on any one tile.
func highestTotal(hand []tile.Tile) int {
	max := -1
	for _, t := range hand {
		if t.Total() > max {
			max = t.Total()
		}
	}
	return max
}

// inHand determines if the hand has the tile, by id and pips.
func inHand(t tile.Tile, hand []tile.Tile) bool {
	for _, t2 := range hand {
		if t2.ID == t.ID && t2.SamePips(t) {
			return true
		}
	}
	return false
}
