package regexp

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// Regexp2Engine compiles expressions with github.com/dlclark/regexp2, which
// supports lookaround and backreferences.
type Regexp2Engine struct {
	// MatchTimeout bounds a single match. Zero means no limit.
	MatchTimeout time.Duration
}

func (Regexp2Engine) Name() string {
	return EngineRegexp2
}

func (e Regexp2Engine) Compile(expr string) (Pattern, error) {
	if _, err := regexp2.Compile(expr, regexp2.None); err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(anchor(expr), regexp2.None)
	if err != nil {
		// A free-spacing (?x) line comment at the end of expr swallows the
		// closing group. In that mode a newline ends the comment and is
		// itself ignored.
		re, err = regexp2.Compile(anchor(expr+"\n"), regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("anchoring %q: %w", expr, err)
		}
	}

	if e.MatchTimeout > 0 {
		re.MatchTimeout = e.MatchTimeout
	}

	return &regexp2Pattern{expr: expr, re: re}, nil
}

type regexp2Pattern struct {
	expr string
	re   *regexp2.Regexp
}

func (p *regexp2Pattern) String() string {
	return p.expr
}

func (p *regexp2Pattern) MatchString(s string) (bool, error) {
	return p.re.MatchString(s)
}
