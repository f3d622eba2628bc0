package anagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotFound indicates no dictionary word has the requested code.
var ErrNotFound = errors.New("anagram: no words for code")

// Key identifies a dictionary entry by its numeric code.
type Key interface {
	Number() *big.Int
}

// Word is a Key given as letters; its code is LettersToPrimes of the word.
type Word string

// Number returns LettersToPrimes(w).
func (w Word) Number() *big.Int {
	return LettersToPrimes(string(w))
}

// Code is a Key given as an already-computed number.
type Code struct {
	n *big.Int
}

// NewCode wraps n as a Key. n is copied.
func NewCode(n *big.Int) Code {
	return Code{n: new(big.Int).Set(n)}
}

// CodeFromInt wraps n as a Key.
func CodeFromInt(n int64) Code {
	return Code{n: big.NewInt(n)}
}

// Number returns a copy of the wrapped value.
func (c Code) Number() *big.Int {
	if c.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.n)
}

// Dict maps anagram codes to the set of words sharing them.
// It performs no locking; serialize Add against concurrent Lookups.
type Dict struct {
	entries map[string]map[string]struct{}
	words   int
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]map[string]struct{})}
}

// Canonical is the stored form of a dictionary word: trimmed and uppercased.
func Canonical(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Add inserts Canonical(word). Blank words are ignored.
func (d *Dict) Add(word string) {
	word = Canonical(word)
	if word == "" {
		return
	}
	code := LettersToPrimes(word).String()
	set, ok := d.entries[code]
	if !ok {
		set = make(map[string]struct{})
		d.entries[code] = set
	}
	if _, dup := set[word]; !dup {
		set[word] = struct{}{}
		d.words++
	}
}

// Lookup returns the words whose code equals k's, sorted.
// Returns ErrNotFound, annotated with the code, when there are none.
func (d *Dict) Lookup(k Key) ([]string, error) {
	code := k.Number().String()
	set, ok := d.entries[code]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNotFound, code)
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)

	return words, nil
}

// Len reports the number of distinct codes.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Words reports the number of distinct words.
func (d *Dict) Words() int {
	return d.words
}

// ReadDict builds a Dict from a newline-delimited word list. A leading
// byte-order mark is ignored.
func ReadDict(r io.Reader) (*Dict, error) {
	d := NewDict()
	if err := d.AddFrom(r); err != nil {
		return nil, err
	}

	return d, nil
}

// AddFrom adds every line of r to d.
func (d *Dict) AddFrom(r io.Reader) error {
	_, err := ScanWords(r, func(word string) error {
		d.Add(word)
		return nil
	})

	return err
}

// LoadDict builds a Dict from one or more word-list files.
func LoadDict(paths ...string) (*Dict, error) {
	d := NewDict()
	for _, path := range paths {
		if err := d.loadFile(path); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Dict) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("anagram: open word list: %w", err)
	}
	defer f.Close()

	if err := d.AddFrom(f); err != nil {
		return fmt.Errorf("anagram: read %s: %w", path, err)
	}

	return nil
}

// ScanWords calls fn with every non-blank trimmed line of r, after stripping
// a UTF-8 or UTF-16 byte-order mark, and returns the number of lines passed.
// Scanning stops at the first error from fn.
func ScanWords(r io.Reader, fn func(word string) error) (int, error) {
	decoded := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(decoded)
	n := 0
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		if err := fn(word); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("scanner error: %w", err)
	}

	return n, nil
}
