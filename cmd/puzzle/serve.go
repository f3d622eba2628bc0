package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/puzzlekit/internal/rpc"
)

type stdioReadWriteCloser struct {
	in  io.ReadCloser
	out io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	inErr := s.in.Close()
	outErr := s.out.Close()
	if inErr != nil {
		return inErr
	}
	return outErr
}

func runServe(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "serve")
	dict := fs.String("dict", e.cfg.Dictionary, "glob of word lists; empty uses the index if present")
	if err := parse(fs, args); err != nil {
		return err
	}

	var words rpc.WordIndex
	w, release, err := openWords(ctx, e, *dict)
	if err != nil {
		e.log.WithError(err).Warn("serving without anagram dictionary")
	} else {
		defer release()
		words = w
	}

	srv := rpc.NewServer(words, e.log)
	e.log.WithField("methods", len(srv.Methods())).Info("serving JSON-RPC on stdio")

	err = srv.Serve(ctx, &stdioReadWriteCloser{in: os.Stdin, out: os.Stdout})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
