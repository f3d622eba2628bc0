package numeric

import (
	"errors"
	"sort"
)

// Sentinel errors returned by numeric helpers.
var (
	// ErrInvalidBase indicates a base outside the supported range [2, 36].
	ErrInvalidBase = errors.New("numeric: invalid base")
	// ErrZeroDenominator indicates a fraction with denominator zero.
	ErrZeroDenominator = errors.New("numeric: zero denominator")
)

const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Binarize writes the magnitude of number in the given base (2..36) using
// digits 0-9 then A-Z. The sign is dropped.
func Binarize(number int64, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", ErrInvalidBase
	}
	n := magnitude(number)
	if n == 0 {
		return "0", nil
	}
	b := uint64(base)
	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%b]
		n /= b
	}

	return string(buf[i:]), nil
}

// magnitude returns |n| without overflowing on math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// PrimeFactors returns the prime factors of n in increasing order, with
// multiplicity: PrimeFactors(60) → [2 2 3 5]. Values below 2 have no prime
// factors and yield nil.
func PrimeFactors(n int) []int {
	if n < 2 {
		return nil
	}
	var factors []int
	for p := 2; p*p <= n; {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// IsPrime reports whether n is prime. Cheaper than PrimeFactors when only a
// yes-or-no is needed.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for k := 3; k*k <= n; k += 2 {
		if n%k == 0 {
			return false
		}
	}

	return true
}

// Factors returns every positive divisor of n in increasing order, 1 and n
// included. Factors(1) is [1]; n below 1 yields nil.
func Factors(n int) []int {
	if n < 1 {
		return nil
	}
	factors := []int{1}
	pfs := PrimeFactors(n)
	for i := 0; i < len(pfs); {
		p, exp := pfs[i], 0
		for i < len(pfs) && pfs[i] == p {
			exp++
			i++
		}
		// Multiply every divisor found so far by p, p², …, p^exp.
		base := len(factors)
		for k, pow := 1, 1; k <= exp; k++ {
			pow *= p
			for _, f := range factors[:base] {
				factors = append(factors, f*pow)
			}
		}
	}
	sort.Ints(factors)

	return factors
}

// Decimate computes the decimal expansion of num/denom and splits it into
// the non-repeating digits after the point and the repeating block:
//
//	Decimate(5, 6)  → [8], [3]      (0.8333…)
//	Decimate(1, 7)  → [], [1 4 2 8 5 7]
//
// For improper fractions the first "digit" carries the integer part as well:
// Decimate(15, 8) → [18 7 5], []. Signs are ignored.
func Decimate(num, denom int) (prefix, repetend []int, err error) {
	if denom == 0 {
		return nil, nil, ErrZeroDenominator
	}
	if num < 0 {
		num = -num
	}
	if denom < 0 {
		denom = -denom
	}

	expansion := []int{}
	seenAt := map[int]int{}
	for num != 0 {
		if _, ok := seenAt[num]; ok {
			break
		}
		seenAt[num] = len(expansion)
		num *= 10
		expansion = append(expansion, num/denom)
		num %= denom
	}
	if num == 0 {
		return expansion, []int{}, nil
	}
	at := seenAt[num]

	return expansion[:at], expansion[at:], nil
}
