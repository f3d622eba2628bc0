// Package rpc exposes the puzzle toolkit as JSON-RPC 2.0 methods over a
// Content-Length framed stream.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/katalvlaran/puzzlekit/anagram"
	"github.com/katalvlaran/puzzlekit/cipher"
	"github.com/katalvlaran/puzzlekit/encodings"
	"github.com/katalvlaran/puzzlekit/text"
)

// WordIndex finds the anagrams of a key. Both *anagram.Dict (through
// DictIndex) and the SQLite store satisfy it.
type WordIndex interface {
	Lookup(ctx context.Context, k anagram.Key) ([]string, error)
}

// DictIndex adapts an in-memory dictionary to WordIndex.
type DictIndex struct {
	Dict *anagram.Dict
}

// Lookup returns the dictionary words sharing k's code.
func (d DictIndex) Lookup(_ context.Context, k anagram.Key) ([]string, error) {
	return d.Dict.Lookup(k)
}

type method func(ctx context.Context, params json.RawMessage) (any, error)

// Server dispatches requests to the toolkit. Words may be nil, in which case
// anagram.lookup fails.
type Server struct {
	words   WordIndex
	log     logrus.FieldLogger
	methods map[string]method
}

// NewServer registers the toolkit methods over words and log.
func NewServer(words WordIndex, log logrus.FieldLogger) *Server {
	s := &Server{words: words, log: log.WithField("component", "rpc")}
	s.methods = map[string]method{
		"playfair.encode":  s.playfair(true),
		"playfair.decode":  s.playfair(false),
		"atbash":           textMethod(cipher.Atbash{}.Encode),
		"caesar.encode":    s.caesar(true),
		"caesar.decode":    s.caesar(false),
		"bacon.decode":     s.bacon,
		"morse.decode":     textMethod(encodings.DecodeMorse),
		"morse.encode":     textMethod(encodings.EncodeMorse),
		"braille.decode":   textMethod(encodings.DecodeBraille),
		"braille.encode":   textMethod(encodings.EncodeBraille),
		"semaphore.decode": textMethod(encodings.DecodeSemaphore),
		"semaphore.encode": textMethod(encodings.EncodeSemaphore),
		"scrabble":         s.scrabble,
		"enumeration":      s.enumeration,
		"anagram.lookup":   s.lookup,
	}

	return s
}

// Methods lists the registered method names, sorted.
func (s *Server) Methods() []string {
	names := make([]string, 0, len(s.methods))
	for name := range s.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serve answers requests on rwc until the peer disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))
	s.log.Debug("connection opened")

	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.DisconnectNotify()
		return ctx.Err()
	case <-conn.DisconnectNotify():
		s.log.Debug("connection closed")
		return nil
	}
}

func (s *Server) handle(ctx context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	log := s.log.WithField("method", req.Method)

	m, ok := s.methods[req.Method]
	if !ok {
		log.Warn("unknown method")
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("method not found: %s", req.Method),
		}
	}

	var params json.RawMessage
	if req.Params != nil {
		params = *req.Params
	}
	result, err := m(ctx, params)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, err
	}
	log.Debug("request served")

	return result, nil
}

type textParams struct {
	Text string `json:"text"`
}

type playfairParams struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type caesarParams struct {
	Shift int    `json:"shift"`
	Text  string `json:"text"`
}

type enumerationParams struct {
	Text     string `json:"text"`
	Capitals bool   `json:"capitals"`
}

type lookupParams struct {
	Word string `json:"word"`
	// Code is a decimal prime product, used when Word is empty.
	Code string `json:"code"`
}

// LookupResult is the anagram.lookup reply.
type LookupResult struct {
	Code  string   `json:"code"`
	Words []string `json:"words"`
}

func decode(params json.RawMessage, v any) error {
	if len(params) == 0 || string(params) == "null" {
		return invalidParams(errors.New("missing params"))
	}
	if err := json.Unmarshal(params, v); err != nil {
		return invalidParams(err)
	}
	return nil
}

func invalidParams(err error) *jsonrpc2.Error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
}

func textMethod(fn func(string) string) method {
	return func(_ context.Context, params json.RawMessage) (any, error) {
		var p textParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		return fn(p.Text), nil
	}
}

func (s *Server) playfair(encode bool) method {
	return func(_ context.Context, params json.RawMessage) (any, error) {
		var p playfairParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		pf := cipher.NewPlayfair(p.Key)
		if encode {
			return pf.Encode(p.Text), nil
		}
		return pf.Decode(p.Text), nil
	}
}

func (s *Server) caesar(encode bool) method {
	return func(_ context.Context, params json.RawMessage) (any, error) {
		var p caesarParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		c := cipher.Caesar{Shift: p.Shift}
		if encode {
			return c.Encode(p.Text), nil
		}
		return c.Decode(p.Text), nil
	}
}

func (s *Server) bacon(_ context.Context, params json.RawMessage) (any, error) {
	var p textParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	b := cipher.NewBacon(nil)
	if isBinary(p.Text) {
		b = cipher.BinaryBacon()
	}
	out, err := b.Decode(p.Text)
	if err != nil {
		return nil, invalidParams(err)
	}
	return out, nil
}

func isBinary(s string) bool {
	for _, r := range s {
		if r != '0' && r != '1' && r != ' ' {
			return false
		}
	}
	return s != ""
}

func (s *Server) scrabble(_ context.Context, params json.RawMessage) (any, error) {
	var p textParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return encodings.Scrabble(p.Text), nil
}

func (s *Server) enumeration(_ context.Context, params json.RawMessage) (any, error) {
	var p enumerationParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	var opts []text.EnumOption
	if p.Capitals {
		opts = append(opts, text.WithCapitals())
	}
	return text.Enumeration(p.Text, opts...), nil
}

func (s *Server) lookup(ctx context.Context, params json.RawMessage) (any, error) {
	var p lookupParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	var key anagram.Key
	switch {
	case p.Word != "":
		key = anagram.Word(p.Word)
	case p.Code != "":
		n, ok := new(big.Int).SetString(p.Code, 10)
		if !ok {
			return nil, invalidParams(fmt.Errorf("bad code %q", p.Code))
		}
		key = anagram.NewCode(n)
	default:
		return nil, invalidParams(errors.New("word or code required"))
	}
	if s.words == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: "no dictionary loaded"}
	}

	words, err := s.words.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	return LookupResult{Code: key.Number().String(), Words: words}, nil
}
