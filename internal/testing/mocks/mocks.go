// Package mocks provides shared test doubles for aocrun packages.
package mocks

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/AndreyAkinshin/aocrun/internal/fetch"
	"github.com/AndreyAkinshin/aocrun/internal/solution"
)

// Fetcher is a test double for an input fetcher.
// Use NewFetcher() to create instances with a fluent builder API.
type Fetcher struct {
	input string
	err   error

	// FetchFunc overrides the canned response when set.
	FetchFunc func(ctx context.Context, req fetch.Request) (string, error)

	// Call tracking (thread-safe)
	callCount int32
	mu        sync.Mutex
	requests  []fetch.Request
}

// NewFetcher creates a Fetcher that returns an empty input.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// WithInput sets the input returned by Fetch.
func (m *Fetcher) WithInput(input string) *Fetcher {
	m.input = input
	return m
}

// WithError makes Fetch fail with err.
func (m *Fetcher) WithError(err error) *Fetcher {
	m.err = err
	return m
}

// Fetch records the request and returns the configured response.
func (m *Fetcher) Fetch(ctx context.Context, req fetch.Request) (string, error) {
	atomic.AddInt32(&m.callCount, 1)
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, req)
	}
	return m.input, m.err
}

// CallCount returns the number of Fetch calls.
func (m *Fetcher) CallCount() int {
	return int(atomic.LoadInt32(&m.callCount))
}

// Requests returns a copy of the requests received so far.
func (m *Fetcher) Requests() []fetch.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]fetch.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Loader is a test double for solution.Loader.
type Loader struct {
	module *solution.Module
	err    error

	callCount int32
	mu        sync.Mutex
	paths     []string
}

// NewLoader creates a Loader returning a module without parts.
func NewLoader() *Loader {
	return &Loader{module: &solution.Module{}}
}

// WithParts sets the plain functions exposed as Part1 and Part2. Either may be nil.
func (m *Loader) WithParts(part1, part2 func() any) *Loader {
	m.module = solution.FromFuncs(part1, part2)
	return m
}

// WithModule sets the module returned by Load.
func (m *Loader) WithModule(module *solution.Module) *Loader {
	m.module = module
	return m
}

// WithError makes Load fail with err.
func (m *Loader) WithError(err error) *Loader {
	m.err = err
	return m
}

// Load records path and returns the configured module.
func (m *Loader) Load(_ context.Context, path string) (*solution.Module, error) {
	atomic.AddInt32(&m.callCount, 1)
	m.mu.Lock()
	m.paths = append(m.paths, path)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return m.module, nil
}

// CallCount returns the number of Load calls.
func (m *Loader) CallCount() int {
	return int(atomic.LoadInt32(&m.callCount))
}

// Paths returns a copy of the paths passed to Load.
func (m *Loader) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}
