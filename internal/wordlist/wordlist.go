// Package wordlist loads newline-delimited password lists from named sources
// and caches them process-wide so repeated checker construction does not
// re-read the same source.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// ErrNotFound marks a source that does not exist at load time.
var ErrNotFound = errors.New("wordlist source not found")

// Source is a named origin of a newline-delimited wordlist.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

type fileSource string

// File returns a Source backed by a local file.
func File(path string) Source { return fileSource(path) }

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open(_ context.Context) (io.ReadCloser, error) {
	rc, err := os.Open(string(f))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("wordlist %q: %w", string(f), ErrNotFound)
		}
		return nil, fmt.Errorf("load wordlist %q: %w", string(f), err)
	}
	return rc, nil
}

// Store caches loaded wordlists by source name. Once a name is loaded it is
// never re-read for the lifetime of the Store, even if the source changes.
// Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	lists map[string][]string
}

func NewStore() *Store {
	return &Store{lists: make(map[string][]string)}
}

// Load returns the cached lines for src, reading the source on first use.
// Each stored line has its trailing line terminator stripped but is otherwise
// untouched: no case folding, no whitespace trimming.
func (s *Store) Load(ctx context.Context, src Source) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := src.Name()
	if words, ok := s.lists[name]; ok {
		return words, nil
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var words []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("load wordlist %q: %w", name, err)
	}

	s.lists[name] = words
	return words, nil
}

// Reset drops every cached list. Testing hook; production code constructs a
// Store once and never resets it.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = make(map[string][]string)
}

// Contains reports whether candidate appears in words, byte-for-byte.
// Matching is case-sensitive and exact. A nil list matches nothing.
func Contains(words []string, candidate string) bool {
	for _, w := range words {
		if w == candidate {
			return true
		}
	}
	return false
}
