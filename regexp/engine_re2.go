package regexp

import (
	"fmt"
	"regexp"
	"regexp/syntax"
)

// RE2Engine compiles expressions with the standard library's RE2 syntax.
type RE2Engine struct{}

func (RE2Engine) Name() string {
	return EngineRE2
}

// Compile validates expr on its own, then anchors the parsed tree rather
// than the source text, so constructs such as an unterminated \Q run to
// the end of expr and no further.
func (RE2Engine) Compile(expr string) (Pattern, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return nil, err
	}

	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, err
	}

	anchored := &syntax.Regexp{
		Op: syntax.OpConcat,
		Sub: []*syntax.Regexp{
			{Op: syntax.OpBeginText},
			tree,
			{Op: syntax.OpEndText},
		},
	}

	re, err := regexp.Compile(anchored.String())
	if err != nil {
		return nil, fmt.Errorf("anchoring %q: %w", expr, err)
	}

	return &re2Pattern{expr: expr, re: re}, nil
}

type re2Pattern struct {
	expr string
	re   *regexp.Regexp
}

func (p *re2Pattern) String() string {
	return p.expr
}

func (p *re2Pattern) MatchString(s string) (bool, error) {
	return p.re.MatchString(s), nil
}
