package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestScoreOn(t *testing.T) {
	type racktest struct {
		rack string
		pts  int
	}
	testCases := []racktest{
		{"ABCDEFG", 16},
		{"XYZ", 22},
		{"??", 0},
		{"?QWERTY", 21},
		{"RETINAO", 7},
	}
	for _, tc := range testCases {
		r := RackFromString(tc.rack)
		score := r.ScoreOn(English)
		if score != tc.pts {
			t.Errorf("For %v, expected %v, got %v", tc.rack, tc.pts, score)
		}
	}
}

func TestRackFromString(t *testing.T) {
	rack := RackFromString("AENPPSW")

	var expected [NumLetters]int
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[16] = 2
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, 7, rack.NumTiles())
}

func TestRackFromStringBlank(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("?A?")
	is.Equal(rack.CountOf(Blank), 2)
	is.Equal(rack.CountOf(1), 1)
	is.Equal(rack.String(), "A??")
}

func TestRackFromStringInvalid(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("AB3")
	is.True(rack.Empty())
}

func TestRackTakeAndAdd(t *testing.T) {
	rack := RackFromString("AENPPSW")

	rack.Take(Letter(16))
	rack.Take(Letter(16))
	rack.Take(Letter(1))
	rack.Add(Letter(1))

	var expected [NumLetters]int
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, 5, rack.NumTiles())
}

func TestRackCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	rack := RackFromString("QI")
	cp := rack.Copy()
	cp.Take(17)
	is.Equal(rack.String(), "IQ")
	is.Equal(cp.String(), "I")
}
