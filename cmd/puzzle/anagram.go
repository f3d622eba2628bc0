package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/katalvlaran/puzzlekit/anagram"
	"github.com/katalvlaran/puzzlekit/internal/rpc"
	"github.com/katalvlaran/puzzlekit/internal/store"
)

func runAnagram(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(e.stderr, "usage: puzzle anagram index|find [flags] [words]")
		return errUsage
	}
	switch args[0] {
	case "index":
		return runAnagramIndex(ctx, e, args[1:])
	case "find":
		return runAnagramFind(ctx, e, args[1:])
	}
	fmt.Fprintf(e.stderr, "puzzle anagram: unknown subcommand %q\n", args[0])
	return errUsage
}

// expandGlob resolves a doublestar pattern such as "words/**/*.txt" to the
// matching files.
func expandGlob(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("glob %q: no word lists match", pattern)
	}
	return paths, nil
}

func runAnagramIndex(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "anagram index")
	dict := fs.String("dict", e.cfg.Dictionary, "glob of newline-delimited word lists")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *dict == "" {
		fmt.Fprintln(e.stderr, "puzzle anagram index: -dict or PUZZLE_DICT is required")
		return errUsage
	}
	paths, err := expandGlob(*dict)
	if err != nil {
		return err
	}

	if err := e.cfg.EnsureDirectories(); err != nil {
		return err
	}
	ix, err := store.Open(ctx, e.cfg.DatabasePath, e.log)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer ix.Close()

	total := 0
	for _, path := range paths {
		added, err := importFile(ctx, ix, path)
		if err != nil {
			return err
		}
		e.log.WithField("file", path).WithField("added", added).Debug("word list indexed")
		total += added
	}
	count, err := ix.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "added %d words from %d files, %d indexed\n", total, len(paths), count)

	return nil
}

func importFile(ctx context.Context, ix *store.Index, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	added, err := ix.Import(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	return added, nil
}

// openWords loads the word lists matching glob into memory, or opens the
// SQLite index when glob is empty. The returned func releases it.
func openWords(ctx context.Context, e *env, glob string) (rpc.WordIndex, func() error, error) {
	if glob != "" {
		paths, err := expandGlob(glob)
		if err != nil {
			return nil, nil, err
		}
		d, err := anagram.LoadDict(paths...)
		if err != nil {
			return nil, nil, err
		}
		e.log.WithField("codes", d.Len()).WithField("words", d.Words()).Debug("dictionary loaded")
		return rpc.DictIndex{Dict: d}, func() error { return nil }, nil
	}

	if _, err := os.Stat(e.cfg.DatabasePath); err != nil {
		return nil, nil, fmt.Errorf("no dictionary: pass -dict or run 'puzzle anagram index' (%w)", err)
	}
	ix, err := store.Open(ctx, e.cfg.DatabasePath, e.log)
	if err != nil {
		return nil, nil, fmt.Errorf("open index: %w", err)
	}
	return ix, ix.Close, nil
}

func runAnagramFind(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "anagram find")
	dict := fs.String("dict", e.cfg.Dictionary, "glob of word lists; empty uses the index")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(e.stderr, "usage: puzzle anagram find [-dict GLOB] WORD...")
		return errUsage
	}

	words, release, err := openWords(ctx, e, *dict)
	if err != nil {
		return err
	}
	defer release()

	for _, w := range fs.Args() {
		found, err := words.Lookup(ctx, anagram.Word(w))
		switch {
		case errors.Is(err, anagram.ErrNotFound):
			fmt.Fprintf(e.stdout, "%s: no anagrams\n", w)
		case err != nil:
			return err
		default:
			fmt.Fprintf(e.stdout, "%s: %s\n", w, strings.Join(found, " "))
		}
	}

	return nil
}
