// Package text provides the string helpers puzzle work leans on constantly:
// filtering to letters, cutting text into pieces, counting characters and
// writing crossword-style enumerations.
//
// Overview:
//
//   - Alphafy keeps letters (plus an optional allowed set) in order.
//   - Normalize uppercases and strips diacritics; Letters further restricts
//     the result to A–Z, the alphabet every classical cipher works over.
//   - Bunch and BunchString cut input into pieces of a fixed length;
//     Chunk cuts it into a fixed number of near-equal pieces.
//   - Histogram groups characters by occurrence count.
//   - Enumeration replaces each word by its length ("wing and a prayer" →
//     "4 3 1 6"), optionally flagging capitalized words.
//
// All functions are pure and safe for concurrent use. Lengths and positions
// are counted in runes, not bytes.
//
// Errors:
//
//   - ErrBadLength: a piece length or piece count was not positive.
package text
