package alphabet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIDs() []string {
	ids := make([]string, 26)
	for i := range ids {
		ids[i] = fmt.Sprintf("10000000000000%04d", i)
	}
	return ids
}

func newTestTables(t *testing.T) *Tables {
	t.Helper()
	tables, err := NewTables(testIDs())
	require.NoError(t, err)
	return tables
}

func TestPrimaryID(t *testing.T) {
	assert.Equal(t, "%F0%9F%87%A6", PrimaryID(0))
	assert.Equal(t, "%F0%9F%87%AF", PrimaryID(9))
	assert.Equal(t, "%F0%9F%87%BF", PrimaryID(25))
}

func TestDuplicateID(t *testing.T) {
	assert.Equal(t, "regional_indicator_q~1%3A42", DuplicateID('Q', "42"))
}

func TestNewTablesRejectsWrongCount(t *testing.T) {
	for _, n := range []int{0, 25, 27} {
		_, err := NewTables(make([]string, n))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIdentifierCount), "n=%d", n)
	}
}

func TestEncodeDuplicateLetter(t *testing.T) {
	tables := newTestTables(t)

	got, err := tables.Encode("AAB")
	require.NoError(t, err)

	assert.Equal(t, []Reaction{
		{Letter: 'A', EmojiID: PrimaryID(0)},
		{Letter: 'A', EmojiID: DuplicateID('A', testIDs()[0])},
		{Letter: 'B', EmojiID: PrimaryID(1)},
	}, got)
}

func TestLookupAcceptsEitherCase(t *testing.T) {
	tables := newTestTables(t)

	upper, ok := tables.Primary('Q')
	require.True(t, ok)
	lower, ok := tables.Primary('q')
	require.True(t, ok)
	assert.Equal(t, PrimaryID(16), upper)
	assert.Equal(t, upper, lower)

	dup, ok := tables.Duplicate('z')
	require.True(t, ok)
	assert.Equal(t, DuplicateID('Z', testIDs()[25]), dup)
}

func TestLookupRejectsNonLetters(t *testing.T) {
	tables := newTestTables(t)

	for _, r := range []rune{'@', '[', '0', ' ', 'é', 0} {
		id, ok := tables.Primary(r)
		assert.False(t, ok, "%q", r)
		assert.Empty(t, id)

		id, ok = tables.Duplicate(r)
		assert.False(t, ok, "%q", r)
		assert.Empty(t, id)
	}
}

func TestEncodeUsesFullCaseMapping(t *testing.T) {
	tables := newTestTables(t)

	got, err := tables.Encode("ß")
	require.NoError(t, err)
	assert.Equal(t, []Reaction{
		{Letter: 'S', EmojiID: PrimaryID(18)},
		{Letter: 'S', EmojiID: DuplicateID('S', testIDs()[18])},
	}, got)

	got, err = tables.Encode("maße")
	require.NoError(t, err)
	assert.Equal(t, "MASSE", Word(got))

	_, err = tables.Encode("straße")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEncodeConflict(t *testing.T) {
	tables := newTestTables(t)

	for _, word := range []string{"AAAB", "banana", "MiSsIsSiPpI", "a-a-a"} {
		got, err := tables.Encode(word)
		assert.Nil(t, got, word)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict, word)
		assert.Equal(t, word, conflict.Word)
		assert.ErrorIs(t, err, ErrConflict)
	}
}

func TestEncodeSkipsNonLetters(t *testing.T) {
	tables := newTestTables(t)

	spaced, err := tables.Encode("A B")
	require.NoError(t, err)
	plain, err := tables.Encode("AB")
	require.NoError(t, err)
	assert.Equal(t, plain, spaced)

	got, err := tables.Encode("h3llo!")
	require.NoError(t, err)
	assert.Equal(t, "HLLO", Word(got))

	got, err = tables.Encode("123")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncodeLengthAndDeterminism(t *testing.T) {
	tables := newTestTables(t)

	words := []string{"hello", "Go", "reaction", "x", "Committee", "über"}
	for _, word := range words {
		first, err := tables.Encode(word)
		require.NoError(t, err, word)
		second, err := tables.Encode(word)
		require.NoError(t, err, word)

		letters := 0
		for _, r := range word {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				letters++
			}
		}
		assert.Len(t, first, letters, word)
		assert.Equal(t, first, second, word)
	}
}

func TestEncodeIsCaseInsensitive(t *testing.T) {
	tables := newTestTables(t)

	lower, err := tables.Encode("hello")
	require.NoError(t, err)
	upper, err := tables.Encode("HELLO")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestEncodeAll(t *testing.T) {
	tables := newTestTables(t)

	encoded, err := tables.EncodeAll([]string{"hi", "there"})
	require.NoError(t, err)
	require.Len(t, encoded, 2)
	assert.Equal(t, "HI", Word(encoded[0]))
	assert.Equal(t, "THERE", Word(encoded[1]))

	_, err = tables.EncodeAll([]string{"ok", "aaa"})
	assert.ErrorIs(t, err, ErrConflict)
}
