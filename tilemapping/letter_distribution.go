package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
)

//go:embed data/english.csv
var englishCSV []byte

// English is the standard English letter distribution. It is built once at
// init and never modified afterwards.
var English *LetterDistribution

func init() {
	var err error
	English, err = ScanLetterDistribution(bytes.NewReader(englishCSV))
	if err != nil {
		panic(err)
	}
	English.Name = "english"
}

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	distribution [NumLetters]uint8
	scores       [NumLetters]int
	numLetters   uint
	Name         string
}

// ScanLetterDistribution reads `letter,quantity,value` records.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	ld := &LetterDistribution{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rn := []rune(record[0])
		if len(rn) != 1 {
			return nil, fmt.Errorf("bad letter in distribution: %q", record[0])
		}
		ml, blank, err := LetterFromRune(rn[0])
		if err != nil {
			return nil, err
		}
		if blank {
			return nil, fmt.Errorf("distribution letters must be upper-case: %q", record[0])
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		ld.distribution[ml] = uint8(n)
		ld.scores[ml] = p
		ld.numLetters += uint(n)
	}
	log.Debug().Uint("tiles", ld.numLetters).Msg("scanned-letter-distribution")
	return ld, nil
}

// Score gives the face value of the given letter. Unset is worth 0.
func (ld *LetterDistribution) Score(ml Letter) int {
	if ml == Unset || int(ml) >= NumLetters {
		return 0
	}
	return ld.scores[ml]
}

// TileScore is the value of a tile as it lies on the board: a blank
// standing in for a letter is worth the blank's value.
func (ld *LetterDistribution) TileScore(ml Letter, blank bool) int {
	if blank {
		return ld.scores[Blank]
	}
	return ld.Score(ml)
}

// Count is the number of tiles of this letter in a full bag.
func (ld *LetterDistribution) Count(ml Letter) int {
	return int(ld.distribution[ml])
}

// NumTotalTiles is the number of tiles in a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return int(ld.numLetters)
}
