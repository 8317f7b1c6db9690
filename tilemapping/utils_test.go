package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestLeaveTilePlay(t *testing.T) {
	is := is.New(t)
	l, err := Leave(RackFromString("CEFGI?"),
		[]Tile{{Letter: 5}, {Letter: 6, Blank: true}, {Letter: 6}})

	is.NoErr(err)
	is.Equal(l.String(), "CGI")
}

func TestLeaveTilePlayTooManyBlanks(t *testing.T) {
	is := is.New(t)
	_, err := Leave(RackFromString("CEFGI?"),
		[]Tile{{Letter: 5}, {Letter: 6, Blank: true}, {Letter: 8, Blank: true}})

	is.Equal(err.Error(), "tile in play but not in rack: ?")
}

func TestLeaveDoesNotModifyRack(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("AB")
	_, err := Leave(rack, []Tile{{Letter: 1}})
	is.NoErr(err)
	is.Equal(rack.String(), "AB")
}
