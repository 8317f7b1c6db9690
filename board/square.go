package board

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/tilemapping"
)

var (
	ColorSupport = os.Getenv("TILESCORE_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'

	NoBonus BonusSquare = ' '
)

// MultiplierType says what a square's multiplier applies to.
type MultiplierType uint8

const (
	NoMultiplier MultiplierType = iota
	LetterMultiplier
	WordMultiplier
)

func (m MultiplierType) String() string {
	switch m {
	case LetterMultiplier:
		return "letter"
	case WordMultiplier:
		return "word"
	}
	return "none"
}

// A Square is a single square in a game board. It contains the multiplier,
// if any, and a letter, if any. Once a square is played its multiplier has
// been used up and is ignored for scoring.
type Square struct {
	letter tilemapping.Letter
	played bool
	// blankLetter is the lower-case rune if a blank stands in for letter.
	blankLetter    rune
	multiplier     int
	multiplierType MultiplierType
}

// NewSquare creates an empty, unplayed square with the given multiplier.
func NewSquare(multiplier int, mt MultiplierType) *Square {
	if mt == NoMultiplier {
		multiplier = 1
	}
	return &Square{multiplier: multiplier, multiplierType: mt}
}

func squareFromBonus(b BonusSquare) *Square {
	switch b {
	case Bonus3WS:
		return NewSquare(3, WordMultiplier)
	case Bonus2WS:
		return NewSquare(2, WordMultiplier)
	case Bonus3LS:
		return NewSquare(3, LetterMultiplier)
	case Bonus2LS:
		return NewSquare(2, LetterMultiplier)
	}
	return NewSquare(1, NoMultiplier)
}

func (s Square) String() string {
	return fmt.Sprintf("<(%v) played=%v (%vx %v)>", s.letter, s.played,
		s.multiplier, s.multiplierType)
}

func (s *Square) equals(s2 *Square) bool {
	if s.multiplier != s2.multiplier || s.multiplierType != s2.multiplierType {
		log.Debug().Msg("Multipliers not equal")
		return false
	}
	if s.letter != s2.letter {
		log.Debug().Msg("Letters not equal")
		return false
	}
	if s.played != s2.played {
		log.Debug().Msgf("played not equal: %v %v", s.played, s2.played)
		return false
	}
	if s.blankLetter != s2.blankLetter {
		log.Debug().Msgf("blanks not equal: %q %q", s.blankLetter, s2.blankLetter)
		return false
	}
	return true
}

func (s *Square) Letter() tilemapping.Letter {
	return s.letter
}

// HasLetter is true if a letter has been put on this square, whether or not
// it is played yet.
func (s *Square) HasLetter() bool {
	return s.letter != tilemapping.Unset
}

func (s *Square) Played() bool {
	return s.played
}

// BlankLetter returns the lower-case rune a blank was designated as, and
// false if the square does not hold a blank.
func (s *Square) BlankLetter() (rune, bool) {
	return s.blankLetter, s.blankLetter != 0
}

func (s *Square) IsBlank() bool {
	return s.blankLetter != 0
}

func (s *Square) Multiplier() int {
	return s.multiplier
}

func (s *Square) MultiplierType() MultiplierType {
	return s.multiplierType
}

// Place puts a tile on the square without marking it played.
func (s *Square) Place(t tilemapping.Tile) {
	s.letter = t.Letter
	s.blankLetter = 0
	if t.Blank {
		s.blankLetter = t.Letter.UserVisible(true)
	}
}

// SetPlayed marks the square played. There is no way back.
func (s *Square) SetPlayed() {
	s.played = true
}

// Tile returns the tile on this square.
func (s *Square) Tile() tilemapping.Tile {
	return tilemapping.Tile{Letter: s.letter, Blank: s.blankLetter != 0}
}

// UserVisible is the rune for the tile on this square, or ' ' if empty.
func (s *Square) UserVisible() rune {
	if s.letter == tilemapping.Unset {
		return ' '
	}
	if s.blankLetter != 0 {
		return s.blankLetter
	}
	return s.letter.Rune()
}

func (s *Square) bonus() BonusSquare {
	switch {
	case s.multiplierType == WordMultiplier && s.multiplier == 3:
		return Bonus3WS
	case s.multiplierType == WordMultiplier && s.multiplier == 2:
		return Bonus2WS
	case s.multiplierType == LetterMultiplier && s.multiplier == 3:
		return Bonus3LS
	case s.multiplierType == LetterMultiplier && s.multiplier == 2:
		return Bonus2LS
	}
	return NoBonus
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return " "
	}
}

// DisplayString shows the tile on the square, or its bonus marker if empty.
func (s Square) DisplayString() string {
	if s.letter == tilemapping.Unset {
		return s.bonus().displayString()
	}
	return string(s.UserVisible())
}
