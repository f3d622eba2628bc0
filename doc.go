// Package puzzlekit is a toolbox for word and logic puzzles: the small,
// independent helpers a puzzle hunter reaches for when a clue smells like a
// cipher, an encoding, an anagram or a grid.
//
// What is in the box?
//
//	text/       letter filtering, bunching, chunking, histograms, enumerations
//	numeric/    base conversion, prime factors, divisors, decimal expansions
//	cipher/     Playfair, Atbash, Caesar and Bacon ciphers
//	encodings/  Braille, Morse and semaphore tables, Scrabble scores
//	anagram/    prime-product letter codes and anagram dictionaries
//	grid/       2-D grids with compass directions, lines, regions and paths
//
// The cmd/puzzle command exposes the same helpers on the shell, indexes word
// lists into SQLite for anagram lookups, and serves everything as JSON-RPC
// over stdio.
//
// Quick example:
//
//	pf := cipher.NewPlayfair("playfair example")
//	pf.Encode("hide the gold in the tree stump")
//	// BMODZBXDNABEKUDMUIXMMOUVIF
//
//	g, _ := grid.FromText("CAT\nXOX\nXXG")
//	grid.Search(g, "COG", true)
//	// [{(0, 0) SE}]
//
// Every package is pure computation without hidden state; nothing here is
// meant as production cryptography.
//
//	go install github.com/katalvlaran/puzzlekit/cmd/puzzle@latest
package puzzlekit
