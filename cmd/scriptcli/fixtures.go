package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/qinglongcn/bitscript/script"
)

// fixtureStore wraps an afero filesystem so script fixture files (one hex
// or text-form script per line) can be loaded from disk in normal use and
// from an in-memory filesystem in tests, matching the teacher's
// afero-backed FileStore.
type fixtureStore struct {
	fs afero.Fs
}

func newFixtureStore() *fixtureStore {
	return &fixtureStore{fs: afero.NewOsFs()}
}

func newMemFixtureStore() *fixtureStore {
	return &fixtureStore{fs: afero.NewMemMapFs()}
}

// LoadScripts reads path line by line, skipping blank lines and lines
// starting with '#', and parses each line as a script via
// script.ParseText (which treats a pure-hex line as raw script bytes).
func (s *fixtureStore) LoadScripts(path string) ([]*script.Script, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture file: %w", err)
	}
	defer f.Close()

	var out []*script.Script
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := script.ParseText(line)
		if err != nil {
			return nil, fmt.Errorf("parsing fixture line %q: %w", line, err)
		}
		out = append(out, parsed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return out, nil
}
