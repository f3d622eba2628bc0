// Package cipher implements the classical ciphers that turn up in puzzle
// hunts: Playfair, Atbash, Caesar and Bacon.
//
// These are puzzle-grade transforms. None of them offers any security.
//
// Overview:
//
//   - Playfair is a digraph substitution over a 5×5 key square built from a
//     keyword (J merged into I). Repeated letters inside a pair are split
//     with a padding letter, which shifts every later pair boundary.
//   - Atbash maps A↔Z, B↔Y, … and is its own inverse.
//   - Caesar rotates letters by a fixed shift; CaesarAll lists all 26.
//   - Bacon reads groups of five two-valued symbols as letters.
//
// Playfair, Atbash and Caesar each satisfy Codec. They share the contract,
// not an implementation. Every value here is immutable once built and safe
// for concurrent use.
//
// Example:
//
//	pf := cipher.NewPlayfair("playfair example")
//	pf.Encode("hide the gold in the tree stump") // "BMODZBXDNABEKUDMUIXMMOUVIF"
package cipher

import "errors"

// Codec is the two-operation contract shared by the text ciphers.
type Codec interface {
	Encode(text string) string
	Decode(text string) string
}

// ErrNotAB indicates a Bacon symbol the a/b function cannot classify.
var ErrNotAB = errors.New("cipher: symbol is neither a nor b")
