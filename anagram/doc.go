// Package anagram represents words as products of primes so that anagrams
// share a single number.
//
// Each letter maps to one of the first 26 primes, ordered by English letter
// frequency (E=2, T=3, A=5, …, Z=101), and a word maps to the product of its
// letters' primes. Multiplication is commutative, so "EAT", "TEA" and "ATE"
// all map to 2·3·5 = 30, and factoring a number recovers its letters.
// Products are big.Int values because long words overflow 64 bits.
//
// Dict groups a word list by code. Lookups take an explicit Key, either a
// Word or a precomputed Code; both resolve to the same number before the map
// is consulted.
//
//	d, _ := anagram.LoadDict("words.txt")
//	d.Lookup(anagram.Word("listen")) // [ENLIST INLETS LISTEN SILENT TINSEL]
//
// The representation borrows an old trick whose origin is long forgotten.
package anagram
