package anagram_test

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/anagram"
)

func TestLettersToPrimes(t *testing.T) {
	// E = 2, T = 3, A = 5, so just to be explicit...
	assert.Equal(t, "30", anagram.LettersToPrimes("eat").String())

	eat := anagram.LettersToPrimes("eat")
	for _, w := range []string{"tea", "t e a", "tÉa", "ATE!"} {
		assert.Zero(t, eat.Cmp(anagram.LettersToPrimes(w)), "LettersToPrimes(%q)", w)
	}
	assert.Equal(t, "109711060", anagram.LettersToPrimes("example").String())
	assert.Equal(t, "1", anagram.LettersToPrimes("").String())
}

// TestLettersToPrimes_Overflow shows long words exceed 64 bits without loss.
func TestLettersToPrimes_Overflow(t *testing.T) {
	word := strings.Repeat("Z", 12)
	want := new(big.Int).Exp(big.NewInt(101), big.NewInt(12), nil)
	got := anagram.LettersToPrimes(word)
	assert.Equal(t, 0, want.Cmp(got))
	assert.False(t, got.IsInt64())
	assert.Equal(t, word, anagram.PrimesToLetters(got))
}

func TestPrimesToLetters(t *testing.T) {
	// Returned string is uppercase, ordered by frequency.
	assert.Equal(t, "ETA", anagram.PrimesToLetters(anagram.LettersToPrimes("eat")))
	assert.Equal(t, "EEALMPX", anagram.PrimesToLetters(big.NewInt(109711060)))

	// Some notes on odd inputs.
	assert.Equal(t, anagram.PrimesToLetters(big.NewInt(350)), anagram.PrimesToLetters(big.NewInt(-350)))
	assert.Equal(t, "EAAO", anagram.PrimesToLetters(big.NewInt(350)))
	assert.Equal(t, "E", anagram.PrimesToLetters(big.NewInt(2*131071)))
	assert.Equal(t, "", anagram.PrimesToLetters(big.NewInt(1)))
	assert.Equal(t, "", anagram.PrimesToLetters(big.NewInt(0)))
	assert.Equal(t, "", anagram.PrimesToLetters(nil))
}

func TestKeys(t *testing.T) {
	n := big.NewInt(30)
	code := anagram.NewCode(n)
	n.SetInt64(7)
	assert.Equal(t, "30", code.Number().String(), "NewCode copies its input")
	assert.Equal(t, anagram.CodeFromInt(30).Number().String(), anagram.Word("ate").Number().String())
	assert.Equal(t, "0", anagram.Code{}.Number().String())
}

func TestDict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n\nneo\nsyzygy\n  One \n"), 0o644))

	d, err := anagram.LoadDict(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 4, d.Words())

	oneAsNumber := anagram.LettersToPrimes("one")
	words, err := d.Lookup(anagram.NewCode(oneAsNumber))
	require.NoError(t, err)
	assert.Equal(t, []string{"NEO", "ONE"}, words)

	words, err = d.Lookup(anagram.Word("eon"))
	require.NoError(t, err)
	assert.Equal(t, []string{"NEO", "ONE"}, words)

	words, err = d.Lookup(anagram.Word("TWO"))
	require.NoError(t, err)
	assert.Equal(t, []string{"TWO"}, words)

	threeAsNumber := anagram.LettersToPrimes("three")
	_, err = d.Lookup(anagram.NewCode(threeAsNumber))
	require.ErrorIs(t, err, anagram.ErrNotFound)
	assert.Contains(t, err.Error(), threeAsNumber.String())

	_, err = d.Lookup(anagram.Word("ether"))
	require.ErrorIs(t, err, anagram.ErrNotFound)
	assert.Contains(t, err.Error(), threeAsNumber.String())
}

func TestReadDict_BOM(t *testing.T) {
	d, err := anagram.ReadDict(strings.NewReader("\ufefflisten\r\nsilent\r\ntinsel\r\n"))
	require.NoError(t, err)
	words, err := d.Lookup(anagram.Word("enlist"))
	require.NoError(t, err)
	assert.Equal(t, []string{"LISTEN", "SILENT", "TINSEL"}, words)
}

func TestLoadDict_Missing(t *testing.T) {
	_, err := anagram.LoadDict(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanWords_StopsOnError(t *testing.T) {
	stop := assert.AnError
	n, err := anagram.ScanWords(strings.NewReader("a\nb\nc"), func(w string) error {
		if w == "b" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}
