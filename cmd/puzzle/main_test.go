package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/internal/config"
)

// harness runs commands against buffers and a database in a temp dir.
type harness struct {
	t      *testing.T
	e      *env
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	logger, _ := test.NewNullLogger()
	h := &harness{t: t, out: new(bytes.Buffer), errOut: new(bytes.Buffer)}
	h.e = &env{
		cfg: &config.Config{
			DatabasePath: filepath.Join(t.TempDir(), "db", "anagram.db"),
			LogLevel:     "debug",
		},
		stdin:  strings.NewReader(""),
		stdout: h.out,
		stderr: h.errOut,
		log:    logger,
	}
	return h
}

func (h *harness) run(args ...string) string {
	h.t.Helper()
	h.out.Reset()
	require.NoError(h.t, run(context.Background(), h.e, args), "stderr: %s", h.errOut)
	return h.out.String()
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

//-----------------------------------------------------------------------//

func TestRun_Ciphers(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "GATLMZCLRQXA\n", h.run("playfair", "-key", "monarchy", "instruments"))
	assert.Equal(t, "INSTRUMENTSX\n", h.run("playfair", "-key", "monarchy", "-decode", "GATLMZCLRQXA"))
	assert.Equal(t, "zyx CBA\n", h.run("atbash", "abc", "XYZ"))
	assert.Equal(t, "nop\n", h.run("caesar", "abc"))
	assert.Equal(t, "abc\n", h.run("caesar", "-shift", "1", "-decode", "bcd"))
	assert.Equal(t, "HI\n", h.run("bacon", "aabbb abaaa"))
	assert.Equal(t, "AB\n", h.run("bacon", "-binary", "00000", "00001"))

	all := strings.Split(strings.TrimRight(h.run("caesar", "-all", "a"), "\n"), "\n")
	require.Len(t, all, 26)
	assert.Equal(t, " 0: a", all[0])
	assert.Equal(t, "25: z", all[25])

	square := h.run("playfair", "-key", "monarchy", "-square")
	assert.True(t, strings.HasPrefix(square, "MONAR\n"), square)
}

func TestRun_Encodings(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "SOS\n", h.run("morse", "...", "---", "..."))
	assert.Equal(t, "... --- ...\n", h.run("morse", "-encode", "sos"))
	assert.Equal(t, "TEST\n", h.run("semaphore", "87 92 43 78"))
	assert.Equal(t, "A\n", h.run("braille", "*....."))
	assert.Equal(t, "quiz 22\nqi 11\n", h.run("scrabble", "quiz", "qi"))
	assert.Equal(t, "*2. 3 *3. *5\n", h.run("enum", "-caps", "Mr. and Mrs. Smith"))
}

func TestRun_Stdin(t *testing.T) {
	h := newHarness(t)
	h.e.stdin = strings.NewReader("abc XYZ\n")
	assert.Equal(t, "zyx CBA\n", h.run("atbash"))
}

func TestRun_Numbers(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "60: primes [2 2 3 5] divisors [1 2 3 4 5 6 10 12 15 20 30 60]\n", h.run("factor", "60"))
	assert.Equal(t, "prefix [] repetend [1 4 2 8 5 7]\n", h.run("decimate", "1", "7"))

	require.Error(t, run(context.Background(), h.e, []string{"factor", "six"}))
	require.Error(t, run(context.Background(), h.e, []string{"decimate", "1", "0"}))
}

func TestRun_Search(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, t.TempDir(), "grid.txt", "CAT\nXOX\nXXG\n")

	out := h.run("search", "-grid", path, "-diag", "cog", "cat", "dog")
	assert.Equal(t, "cog: (0, 0) SE\ncat: (0, 0) E\ndog: not found\n", out)

	out = h.run("search", "-grid", path, "cog")
	assert.Equal(t, "cog: not found\n", out)

	spaced := writeFile(t, t.TempDir(), "spaced.txt", "C A T\nX O X\n")
	assert.Equal(t, "cat: (0, 0) E\n", h.run("search", "-grid", spaced, "-sep", " ", "cat"))
}

func TestRun_Anagram(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	writeFile(t, dir, "a/words.txt", "listen\nsilent\nstop\n")
	writeFile(t, dir, "b/c/more.txt", "enlist\npots\n")
	writeFile(t, dir, "b/ignored.csv", "tinsel\n")
	glob := filepath.Join(dir, "**", "*.txt")

	assert.Equal(t, "added 5 words from 2 files, 5 indexed\n", h.run("anagram", "index", "-dict", glob))
	assert.Equal(t, "tinsel: ENLIST LISTEN SILENT\nxyz: no anagrams\n", h.run("anagram", "find", "tinsel", "xyz"))

	// Re-indexing adds nothing new.
	assert.Equal(t, "added 0 words from 2 files, 5 indexed\n", h.run("anagram", "index", "-dict", glob))

	// An explicit glob bypasses the index.
	assert.Equal(t, "tops: POTS STOP\n", h.run("anagram", "find", "-dict", glob, "tops"))
}

func TestRun_AnagramWithoutIndex(t *testing.T) {
	h := newHarness(t)
	err := run(context.Background(), h.e, []string{"anagram", "find", "stop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dictionary")
}

func TestRun_Usage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.ErrorIs(t, run(ctx, h.e, nil), errUsage)
	require.ErrorIs(t, run(ctx, h.e, []string{"vigenere"}), errUsage)
	require.ErrorIs(t, run(ctx, h.e, []string{"caesar", "-nope"}), errUsage)
	require.ErrorIs(t, run(ctx, h.e, []string{"anagram"}), errUsage)
	require.ErrorIs(t, run(ctx, h.e, []string{"anagram", "index"}), errUsage)
	require.ErrorIs(t, run(ctx, h.e, []string{"search", "cat"}), errUsage)
	assert.Contains(t, h.errOut.String(), "unknown command")
}
