package tilemapping

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Rack is a machine-friendly representation of a user's rack: a count per
// letter, with the blank counted separately at index Blank.
type Rack struct {
	LetArr     [NumLetters]int
	numLetters int
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString creates a Rack from a string such as "AEINST?". Lower-case
// letters are counted as the upper-case letter.
func RackFromString(rack string) *Rack {
	r := &Rack{}
	for _, ch := range rack {
		ml, _, err := LetterFromRune(ch)
		if err != nil {
			log.Error().AnErr("err", err).Msg("unable to convert rack")
			r.Clear()
			return r
		}
		r.Add(ml)
	}
	return r
}

// String returns a user-visible, alphabetized version of this rack with
// blanks last.
func (r *Rack) String() string {
	var sb strings.Builder
	for ml := Letter(1); ml <= Blank; ml++ {
		for j := 0; j < r.LetArr[ml]; j++ {
			sb.WriteRune(ml.Rune())
		}
	}
	return sb.String()
}

// Copy returns a deep copy of this rack
func (r *Rack) Copy() *Rack {
	n := *r
	return &n
}

func (r *Rack) Clear() {
	r.LetArr = [NumLetters]int{}
	r.numLetters = 0
}

func (r *Rack) Take(letter Letter) {
	// this function should only be called if there is a letter on the rack
	// it doesn't check if it's there!
	r.LetArr[letter]--
	r.numLetters--
}

func (r *Rack) Has(letter Letter) bool {
	return r.LetArr[letter] > 0
}

func (r *Rack) CountOf(letter Letter) int {
	return r.LetArr[letter]
}

func (r *Rack) Add(letter Letter) {
	r.LetArr[letter]++
	r.numLetters++
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	for ml := Letter(1); ml <= Blank; ml++ {
		score += ld.Score(ml) * r.LetArr[ml]
	}
	return score
}
