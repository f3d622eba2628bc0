package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlekit/cipher"
	"github.com/katalvlaran/puzzlekit/encodings"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/numeric"
	"github.com/katalvlaran/puzzlekit/text"
)

func newFlags(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parse wraps flag errors as errUsage so main does not log them twice.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// input joins args, reading stdin when there are none.
func input(e *env, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(e.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func runPlayfair(_ context.Context, e *env, args []string) error {
	fs := newFlags(e, "playfair")
	key := fs.String("key", "", "keyword for the key square")
	decode := fs.Bool("decode", false, "decode instead of encode")
	square := fs.Bool("square", false, "print the key square")
	if err := parse(fs, args); err != nil {
		return err
	}

	pf := cipher.NewPlayfair(*key)
	if *square {
		for _, row := range pf.KeySquare() {
			fmt.Fprintln(e.stdout, row)
		}
		return nil
	}
	msg, err := input(e, fs.Args())
	if err != nil {
		return err
	}
	if *decode {
		fmt.Fprintln(e.stdout, pf.Decode(msg))
	} else {
		fmt.Fprintln(e.stdout, pf.Encode(msg))
	}

	return nil
}

func runAtbash(_ context.Context, e *env, args []string) error {
	msg, err := input(e, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, cipher.Atbash{}.Encode(msg))
	return nil
}

func runCaesar(_ context.Context, e *env, args []string) error {
	fs := newFlags(e, "caesar")
	shift := fs.Int("shift", 13, "letters to shift by")
	decode := fs.Bool("decode", false, "shift backwards")
	all := fs.Bool("all", false, "print every shift")
	if err := parse(fs, args); err != nil {
		return err
	}
	msg, err := input(e, fs.Args())
	if err != nil {
		return err
	}

	if *all {
		for i, s := range cipher.CaesarAll(msg) {
			fmt.Fprintf(e.stdout, "%2d: %s\n", i, s)
		}
		return nil
	}
	c := cipher.Caesar{Shift: *shift}
	if *decode {
		fmt.Fprintln(e.stdout, c.Decode(msg))
	} else {
		fmt.Fprintln(e.stdout, c.Encode(msg))
	}

	return nil
}

func runBacon(_ context.Context, e *env, args []string) error {
	fs := newFlags(e, "bacon")
	binary := fs.Bool("binary", false, "read 0 as a and 1 as b")
	encode := fs.Bool("encode", false, "encode instead of decode")
	if err := parse(fs, args); err != nil {
		return err
	}
	msg, err := input(e, fs.Args())
	if err != nil {
		return err
	}

	b := cipher.NewBacon(nil)
	if *binary {
		b = cipher.BinaryBacon()
	}
	if *encode {
		fmt.Fprintln(e.stdout, b.Encode(msg))
		return nil
	}
	out, err := b.Decode(msg)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, out)

	return nil
}

// tableCommand builds a decode-by-default command over one of the encodings.
func tableCommand(name string, decode, encode func(string) string) command {
	return func(_ context.Context, e *env, args []string) error {
		fs := newFlags(e, name)
		enc := fs.Bool("encode", false, "encode text instead of decoding")
		if err := parse(fs, args); err != nil {
			return err
		}
		msg, err := input(e, fs.Args())
		if err != nil {
			return err
		}
		if *enc {
			fmt.Fprintln(e.stdout, encode(msg))
		} else {
			fmt.Fprintln(e.stdout, decode(msg))
		}
		return nil
	}
}

var (
	runMorse     = tableCommand("morse", encodings.DecodeMorse, encodings.EncodeMorse)
	runBraille   = tableCommand("braille", encodings.DecodeBraille, encodings.EncodeBraille)
	runSemaphore = tableCommand("semaphore", encodings.DecodeSemaphore, encodings.EncodeSemaphore)
)

func runScrabble(_ context.Context, e *env, args []string) error {
	if len(args) == 0 {
		msg, err := input(e, nil)
		if err != nil {
			return err
		}
		args = strings.Fields(msg)
	}
	for _, w := range args {
		fmt.Fprintf(e.stdout, "%s %d\n", w, encodings.Scrabble(w))
	}
	return nil
}

func runEnum(_ context.Context, e *env, args []string) error {
	fs := newFlags(e, "enum")
	caps := fs.Bool("caps", false, "mark capitalized words with *")
	if err := parse(fs, args); err != nil {
		return err
	}
	msg, err := input(e, fs.Args())
	if err != nil {
		return err
	}

	var opts []text.EnumOption
	if *caps {
		opts = append(opts, text.WithCapitals())
	}
	fmt.Fprintln(e.stdout, text.Enumeration(msg, opts...))

	return nil
}

func runFactor(_ context.Context, e *env, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(e.stderr, "usage: puzzle factor N...")
		return errUsage
	}
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("factor %q: %w", a, err)
		}
		fmt.Fprintf(e.stdout, "%d: primes %v divisors %v\n", n, numeric.PrimeFactors(n), numeric.Factors(n))
	}
	return nil
}

func runDecimate(_ context.Context, e *env, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(e.stderr, "usage: puzzle decimate NUM DENOM")
		return errUsage
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}
	denom, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("denominator: %w", err)
	}

	prefix, repetend, err := numeric.Decimate(num, denom)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "prefix %v repetend %v\n", prefix, repetend)

	return nil
}

func runSearch(_ context.Context, e *env, args []string) error {
	fs := newFlags(e, "search")
	path := fs.String("grid", "", "file holding the letter grid")
	sep := fs.String("sep", "", "cell separator within a line; empty splits every rune")
	diag := fs.Bool("diag", false, "include diagonal directions")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *path == "" || fs.NArg() == 0 {
		fmt.Fprintln(e.stderr, "usage: puzzle search -grid FILE [-sep S] [-diag] WORD...")
		return errUsage
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("read grid: %w", err)
	}
	var opts []grid.TextOption
	if *sep != "" {
		opts = append(opts, grid.WithSeparator(*sep))
	}
	g, err := grid.FromText(strings.TrimRight(string(raw), "\r\n"), opts...)
	if err != nil {
		return err
	}
	e.log.WithField("rows", g.Rows).WithField("columns", g.Columns).Debug("grid loaded")

	for _, word := range fs.Args() {
		found := grid.Search(g, word, *diag)
		if len(found) == 0 {
			fmt.Fprintf(e.stdout, "%s: not found\n", word)
			continue
		}
		for _, p := range found {
			fmt.Fprintf(e.stdout, "%s: %v %v\n", word, p.Start, p.Dir)
		}
	}

	return nil
}
