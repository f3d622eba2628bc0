// Package encodings converts between letters and the fixed-table codes
// common in puzzles: Braille, Morse and flag semaphore, plus Scrabble tile
// scoring.
//
// Message format:
//
//   - A message is a whitespace-separated string of tokens, or a slice of
//     tokens for the *Tokens variants. Each token decodes to one character;
//     unknown tokens decode to '?'.
//   - Braille cells are six characters, '*' for a raised dot and '.' for a
//     flat one, in dot order 1–6: "*...*." is E (dots 1 and 5).
//   - Morse uses '.' and '-'; '/' is accepted as a letter separator.
//   - Semaphore tokens name the two arm positions as numeric-keypad digits
//     (1–9 without 5, 2 is straight down) as seen by the reader. Order does
//     not matter: "29" and "92" are both E.
//
// Encoders work on Normalize'd text (uppercased, diacritics stripped):
// letters and digits with a code are encoded; letters and digits without one
// become "?"; everything else is dropped.
//
// Tables are built once and never modified, so every function here is safe
// for concurrent use.
package encodings
