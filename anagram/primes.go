package anagram

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/puzzlekit/text"
)

// frequencyOrder lists A–Z from most to least frequent in English.
const frequencyOrder = "ETAOINSRHLDCUMFPGWYBVKXJQZ"

// letterPrimes[i] is the prime for frequencyOrder[i].
var letterPrimes = [26]int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101,
}

// primeOf maps 'A'..'Z' (index r-'A') to its prime.
var primeOf = func() [26]int64 {
	var out [26]int64
	for i, r := range frequencyOrder {
		out[r-'A'] = letterPrimes[i]
	}
	return out
}()

// LettersToPrimes returns the product of the primes of the letters of word.
// Case and diacritics are ignored; anything that is not a letter A–Z counts
// as 1, so "t e a" equals "eat".
func LettersToPrimes(word string) *big.Int {
	product := big.NewInt(1)
	var p big.Int
	for _, r := range text.Normalize(word) {
		if r < 'A' || r > 'Z' {
			continue
		}
		product.Mul(product, p.SetInt64(primeOf[r-'A']))
	}

	return product
}

// PrimesToLetters factors n back into letters, most frequent letter first:
// PrimesToLetters(30) is "ETA". The sign of n is ignored, prime factors that
// are not letter primes are skipped, and 0 and 1 give "".
func PrimesToLetters(n *big.Int) string {
	if n == nil || n.Sign() == 0 {
		return ""
	}
	rest := new(big.Int).Abs(n)
	one := big.NewInt(1)
	var b strings.Builder
	var p, q, m big.Int
	for i, prime := range letterPrimes {
		if rest.Cmp(one) == 0 {
			break
		}
		p.SetInt64(prime)
		for {
			q.QuoRem(rest, &p, &m)
			if m.Sign() != 0 {
				break
			}
			rest.Set(&q)
			b.WriteByte(frequencyOrder[i])
		}
	}

	return b.String()
}
