// Command puzzle runs the puzzlekit utilities from the shell or serves them
// as JSON-RPC over stdio.
//
// Usage:
//
//	puzzle playfair [-key K] [-decode] TEXT
//	puzzle atbash TEXT
//	puzzle caesar [-shift N] [-decode] [-all] TEXT
//	puzzle bacon [-binary] TEXT
//	puzzle morse|braille|semaphore [-encode] TEXT
//	puzzle scrabble WORD...
//	puzzle enum [-caps] TEXT
//	puzzle factor N...
//	puzzle decimate NUM DENOM
//	puzzle search -grid FILE [-sep S] [-diag] WORD...
//	puzzle anagram index [-dict GLOB]
//	puzzle anagram find [-dict GLOB] WORD...
//	puzzle serve [-dict GLOB]
//
// TEXT is the remaining arguments joined by spaces, or standard input when
// there are none.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/puzzlekit/internal/config"
)

// errUsage is returned for a bad command line; the usage text has already
// been printed.
var errUsage = errors.New("usage")

type env struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    log.FieldLogger
}

type command func(ctx context.Context, e *env, args []string) error

var commands = map[string]command{
	"playfair":  runPlayfair,
	"atbash":    runAtbash,
	"caesar":    runCaesar,
	"bacon":     runBacon,
	"morse":     runMorse,
	"braille":   runBraille,
	"semaphore": runSemaphore,
	"scrabble":  runScrabble,
	"enum":      runEnum,
	"factor":    runFactor,
	"decimate":  runDecimate,
	"search":    runSearch,
	"anagram":   runAnagram,
	"serve":     runServe,
}

func main() {
	cfg := config.Load()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    log.StandardLogger(),
	}
	if err := run(ctx, e, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			log.WithError(err).Error("puzzle failed")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		usage(e.stderr)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(e.stderr, "puzzle: unknown command %q\n", args[0])
		usage(e.stderr)
		return errUsage
	}

	return cmd(ctx, e, args[1:])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: puzzle <command> [flags] [args]")
	fmt.Fprintln(w, "commands: playfair atbash caesar bacon morse braille semaphore scrabble enum factor decimate search anagram serve")
}
