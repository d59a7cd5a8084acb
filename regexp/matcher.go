package regexp

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/TykTechnologies/regexmatch/log"
)

// Matcher tests subjects for full-string matches against patterns, caching
// each compiled pattern under its exact source text. A Matcher is safe for
// concurrent use.
type Matcher struct {
	engine Engine
	cache  Cache
	logger log.Logger

	// compiles collapses concurrent misses for the same pattern into a
	// single engine call.
	compiles singleflight.Group

	hits         atomic.Uint64
	misses       atomic.Uint64
	compilations atomic.Uint64
	failures     atomic.Uint64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithEngine sets the engine used to compile patterns.
func WithEngine(engine Engine) Option {
	return func(m *Matcher) {
		m.engine = engine
	}
}

// WithCache sets the pattern cache. Sharing a Cache between Matchers with
// different engines is not supported.
func WithCache(cache Cache) Option {
	return func(m *Matcher) {
		m.cache = cache
	}
}

// WithLogger sets the logger validation and compilation failures are
// reported to.
func WithLogger(logger log.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// New returns a Matcher using RE2 and an unbounded MapCache unless
// overridden by opts.
func New(opts ...Option) *Matcher {
	m := &Matcher{}
	for _, opt := range opts {
		opt(m)
	}

	if m.engine == nil {
		m.engine = RE2Engine{}
	}
	if m.cache == nil {
		m.cache = NewMapCache()
	}
	if m.logger == nil {
		m.logger = log.Get().WithPrefix("regexp")
	}

	return m
}

// Engine returns the engine patterns are compiled with.
func (m *Matcher) Engine() Engine {
	return m.engine
}

// Matches reports whether subject matches pattern in its entirety.
//
// A pattern that fails to compile yields an *InvalidArgumentError wrapping
// the compilation error.
func (m *Matcher) Matches(pattern, subject string) (bool, error) {
	p, err := m.Compile(pattern)
	if err != nil {
		return false, err
	}

	matched, err := p.MatchString(subject)
	if err != nil {
		return false, fmt.Errorf("matching pattern %q: %w", pattern, err)
	}

	return matched, nil
}

// MatchesPtr is Matches for inputs that may be absent. A nil pattern or
// subject is rejected with an *InvalidArgumentError before any compilation.
func (m *Matcher) MatchesPtr(pattern, subject *string) (bool, error) {
	if pattern == nil || subject == nil {
		logger := m.logger.WithFields(log.Fields{
			"pattern_set": pattern != nil,
			"subject_set": subject != nil,
		})
		if pattern != nil {
			logger = logger.WithField("pattern", *pattern)
		}
		logger.Warn("Received nil argument")

		return false, NewInvalidArgument(msgNilArgument)
	}

	return m.Matches(*pattern, *subject)
}

// Compile returns the cached Pattern for pattern, compiling and storing it
// on first use. Failed compilations are not cached.
func (m *Matcher) Compile(pattern string) (Pattern, error) {
	// cache hit
	if p, ok := m.cache.Load(pattern); ok {
		m.hits.Add(1)
		return p, nil
	}

	// cache miss
	m.misses.Add(1)

	v, err, _ := m.compiles.Do(pattern, func() (interface{}, error) {
		// a previous flight may have stored it since our Load
		if p, ok := m.cache.Load(pattern); ok {
			return p, nil
		}

		m.compilations.Add(1)
		p, err := m.engine.Compile(pattern)
		if err != nil {
			m.failures.Add(1)
			return nil, err
		}

		actual, _ := m.cache.LoadOrStore(pattern, p)
		return actual, nil
	})
	if err != nil {
		m.logger.WithField("pattern", pattern).WithError(err).Error("Invalid regular expression")
		return nil, WrapInvalidArgument(msgInvalidPattern, err)
	}

	return v.(Pattern), nil
}

// Stats is a point-in-time snapshot of Matcher counters.
type Stats struct {
	Hits         uint64
	Misses       uint64
	Compilations uint64
	Failures     uint64
	Entries      int
}

// Stats returns the current counters and the number of cached patterns.
func (m *Matcher) Stats() Stats {
	return Stats{
		Hits:         m.hits.Load(),
		Misses:       m.misses.Load(),
		Compilations: m.compilations.Load(),
		Failures:     m.failures.Load(),
		Entries:      m.cache.Len(),
	}
}
