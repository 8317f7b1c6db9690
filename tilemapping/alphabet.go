package tilemapping

import (
	"fmt"
	"unicode"
)

// A Letter is a tile letter. Unset marks an empty square, Blank is the
// undesignated wildcard tile. A through Z are 1 through 26.
type Letter uint8

const (
	Unset Letter = 0
	Blank Letter = 27

	// NumLetters is the size of any array indexed by Letter.
	NumLetters = 28

	// BlankToken is the user-friendly representation of a blank on a rack.
	BlankToken = '?'
)

// LetterFromRune converts a user-visible rune into a Letter. Lower-case
// letters denote a blank tile designated as that letter; in that case
// blank is true and the designated Letter is returned.
func LetterFromRune(r rune) (l Letter, blank bool, err error) {
	switch {
	case r == BlankToken:
		return Blank, false, nil
	case r >= 'A' && r <= 'Z':
		return Letter(r-'A') + 1, false, nil
	case r >= 'a' && r <= 'z':
		return Letter(r-'a') + 1, true, nil
	}
	return Unset, false, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// Rune returns the upper-case rune for this letter.
func (l Letter) Rune() rune {
	switch {
	case l == Blank:
		return BlankToken
	case l >= 1 && l <= 26:
		return rune('A' + l - 1)
	}
	return ' '
}

// UserVisible returns the rune to display; a blank-designated letter is
// shown in lower case.
func (l Letter) UserVisible(blank bool) rune {
	r := l.Rune()
	if blank {
		return unicode.ToLower(r)
	}
	return r
}

// IsLetter is true for A through Z.
func (l Letter) IsLetter() bool {
	return l >= 1 && l <= 26
}

func (l Letter) String() string {
	if l == Unset {
		return "UNSET"
	}
	if l == Blank {
		return "BLANK"
	}
	return string(l.Rune())
}
