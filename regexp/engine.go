package regexp

//go:generate mockgen -destination=./mock/engine.go -package mock . Engine,Pattern

import (
	"fmt"
	"strings"
)

const (
	EngineRE2     = "re2"
	EngineRegexp2 = "regexp2"
)

// Pattern is an immutable compiled expression that tests for full-string matches.
type Pattern interface {
	// String returns the source text the pattern was compiled from.
	String() string

	// MatchString reports whether the whole of s matches the pattern.
	MatchString(s string) (bool, error)
}

// Engine compiles expressions into Patterns.
type Engine interface {
	Name() string
	Compile(expr string) (Pattern, error)
}

// EngineByName returns the engine registered under name. An empty name
// selects RE2.
func EngineByName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "", EngineRE2:
		return RE2Engine{}, nil
	case EngineRegexp2:
		return Regexp2Engine{}, nil
	default:
		return nil, fmt.Errorf("unknown regexp engine %q", name)
	}
}

// anchor wraps expr so that a successful regexp2 match must span the whole input.
func anchor(expr string) string {
	return `\A(?:` + expr + `)\z`
}
