// Package numeric collects the number tricks that show up in puzzles:
// writing a number in another base, prime factoring, listing divisors and
// finding where a fraction's decimal expansion starts to repeat.
//
// Errors (sentinel):
//
//   - ErrInvalidBase:     base outside [2, 36].
//   - ErrZeroDenominator: Decimate called with a zero denominator.
package numeric
