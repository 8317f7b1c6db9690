package tilemapping

import (
	"fmt"
)

// A Tile is a single tile as it is laid on the board: a letter, and whether
// it is a blank designated as that letter.
type Tile struct {
	Letter Letter
	Blank  bool
}

// Leave calculates what remains on the rack after the given tiles are
// played from it. A blank-designated tile consumes a blank from the rack.
// The rack is not modified.
func Leave(rack *Rack, played []Tile) (*Rack, error) {
	leave := rack.Copy()
	for _, t := range played {
		ml := t.Letter
		if t.Blank {
			ml = Blank
		}
		if !leave.Has(ml) {
			return nil, fmt.Errorf("tile in play but not in rack: %c",
				ml.UserVisible(t.Blank))
		}
		leave.Take(ml)
	}
	return leave, nil
}
