package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Letters is the encodable alphabet, in table order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Reaction is one encoded letter: the letter it came from and the emoji
// identifier the reaction endpoint expects.
type Reaction struct {
	Letter  byte
	EmojiID string
}

// Tables holds the primary and duplicate identifier for every letter.
// It is built once by NewTables and never modified afterwards.
type Tables struct {
	primary   [26]string
	duplicate [26]string
}

// PrimaryID returns the percent-encoded regional indicator for the letter
// at index i (A=0). U+1F1E6 encodes as F0 9F 87 A6, the last byte grows with i.
func PrimaryID(i int) string {
	return fmt.Sprintf("%%F0%%9F%%87%%%X", 0xA6+i)
}

// DuplicateID builds the custom emoji identifier used for a second
// occurrence of letter, given the custom emoji's snowflake id.
func DuplicateID(letter byte, emojiID string) string {
	return "regional_indicator_" + strings.ToLower(string(letter)) + "~1%3A" + emojiID
}

// NewTables builds the mapping tables. ids must contain exactly one custom
// emoji id per letter, in alphabetical order.
func NewTables(ids []string) (*Tables, error) {
	if len(ids) != len(Letters) {
		return nil, fmt.Errorf("%w: got %d/%d", ErrIdentifierCount, len(ids), len(Letters))
	}

	t := &Tables{}
	for i := 0; i < len(Letters); i++ {
		t.primary[i] = PrimaryID(i)
		t.duplicate[i] = DuplicateID(Letters[i], strings.TrimSpace(ids[i]))
	}
	return t, nil
}

// Primary returns the first-occurrence identifier for letter, in either
// case. ok is false for anything outside A-Z.
func (t *Tables) Primary(letter rune) (id string, ok bool) {
	i, ok := index(letter)
	if !ok {
		return "", false
	}
	return t.primary[i], true
}

// Duplicate returns the second-occurrence identifier for letter, in either
// case. ok is false for anything outside A-Z.
func (t *Tables) Duplicate(letter rune) (id string, ok bool) {
	i, ok := index(letter)
	if !ok {
		return "", false
	}
	return t.duplicate[i], true
}

func index(letter rune) (int, bool) {
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}

// Encode maps the letters of word to emoji identifiers. The word is
// upper-cased with full Unicode case mapping, so "ß" counts as "SS".
// Characters outside A-Z are then skipped. A letter may appear at most
// twice; a third occurrence fails the whole word with a *ConflictError.
func (t *Tables) Encode(word string) ([]Reaction, error) {
	var (
		seen       [26]bool
		duplicated [26]bool
		result     = make([]Reaction, 0, len(word))
	)

	for _, r := range cases.Upper(language.Und).String(word) {
		i, ok := index(r)
		if !ok {
			continue
		}
		letter := Letters[i]

		switch {
		case duplicated[i]:
			return nil, &ConflictError{Word: word, Letter: letter}
		case seen[i]:
			result = append(result, Reaction{Letter: letter, EmojiID: t.duplicate[i]})
			duplicated[i] = true
		default:
			result = append(result, Reaction{Letter: letter, EmojiID: t.primary[i]})
			seen[i] = true
		}
	}

	return result, nil
}

// EncodeAll encodes every word, stopping at the first conflict.
func (t *Tables) EncodeAll(words []string) ([][]Reaction, error) {
	encoded := make([][]Reaction, len(words))
	for i, word := range words {
		reactions, err := t.Encode(word)
		if err != nil {
			return nil, err
		}
		encoded[i] = reactions
	}
	return encoded, nil
}

// Word renders encoded reactions back to their letters, for log lines.
func Word(reactions []Reaction) string {
	var b strings.Builder
	for _, r := range reactions {
		b.WriteByte(r.Letter)
	}
	return b.String()
}
