package mechanics

import (
	"github.com/samber/lo"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/move"
	"github.com/domino14/tilescore/tilemapping"
)

// NewTiles returns the tiles cmd would put on empty squares of b. Letters
// that land on squares already played, or off the board, are skipped.
func NewTiles(cmd *move.PlayCommand, b *board.GameBoard) ([]tilemapping.Tile, error) {
	tiles, err := cmd.Tiles()
	if err != nil {
		return nil, err
	}
	return lo.Filter(tiles, func(_ tilemapping.Tile, i int) bool {
		row, col := cmd.Position(i)
		return b.PosExists(row, col) && !b.GetSquare(row, col).Played()
	}), nil
}

func rackHolds(rack *tilemapping.Rack, t tilemapping.Tile) bool {
	if t.Blank {
		return rack.Has(tilemapping.Blank)
	}
	return rack.Has(t.Letter)
}

// PlayCommandHasLettersFromRack is the lenient rack check: it passes when
// at least one newly placed tile can come from the rack. A lower-case
// letter needs a blank.
func PlayCommandHasLettersFromRack(cmd *move.PlayCommand, b *board.GameBoard,
	rack *tilemapping.Rack) bool {

	tiles, err := NewTiles(cmd, b)
	if err != nil {
		return false
	}
	return lo.SomeBy(tiles, func(t tilemapping.Tile) bool { return rackHolds(rack, t) })
}

// RackCoversPlay is the strict rack check: every newly placed tile must be
// drawn from the rack, one blank per lower-case letter. The rack is not
// modified.
func RackCoversPlay(cmd *move.PlayCommand, b *board.GameBoard, rack *tilemapping.Rack) bool {
	tiles, err := NewTiles(cmd, b)
	if err != nil {
		return false
	}
	_, err = tilemapping.Leave(rack, tiles)
	return err == nil
}

// CheckRack runs the strict or lenient rack check and returns a
// MoveValidationError when it fails.
func CheckRack(cmd *move.PlayCommand, b *board.GameBoard, rack *tilemapping.Rack, strict bool) error {
	var ok bool
	if strict {
		ok = RackCoversPlay(cmd, b, rack)
	} else {
		ok = PlayCommandHasLettersFromRack(cmd, b, rack)
	}
	if !ok {
		return invalid(ErrLettersNotOnRack)
	}
	return nil
}
