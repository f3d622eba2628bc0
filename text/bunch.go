package text

// Bunch breaks s into consecutive pieces of the given length; the last piece
// holds whatever remains. Each piece has the input's type, so a []string
// yields [][]string.
// Returns ErrBadLength if length is not positive.
func Bunch[S ~[]E, E any](s S, length int) ([]S, error) {
	if length <= 0 {
		return nil, ErrBadLength
	}
	out := make([]S, 0, (len(s)+length-1)/length)
	for i := 0; i < len(s); i += length {
		end := min(i+length, len(s))
		out = append(out, s[i:end:end])
	}

	return out, nil
}

// BunchString is Bunch over the runes of s:
//
//	BunchString("forexample", 3) → ["for" "exa" "mpl" "e"]
func BunchString(s string, length int) ([]string, error) {
	pieces, err := Bunch([]rune(s), length)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = string(p)
	}

	return out, nil
}

// Chunk breaks s into howMany pieces of equal length, the last one possibly
// shorter. Input too short to fill every piece yields fewer pieces:
//
//	Chunk("forexample", 3) → ["fore" "xamp" "le"]
//	Chunk("12345678", 5)   → ["12" "34" "56" "78"]
//
// Returns ErrBadLength if howMany is not positive.
func Chunk(s string, howMany int) ([]string, error) {
	if howMany <= 0 {
		return nil, ErrBadLength
	}
	n := len([]rune(s))
	if n == 0 {
		return []string{}, nil
	}

	return BunchString(s, (n+howMany-1)/howMany)
}
