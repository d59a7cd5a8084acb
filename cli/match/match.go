package match

import (
	"fmt"
	"io"
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/TykTechnologies/regexmatch/config"
	"github.com/TykTechnologies/regexmatch/log"
	"github.com/TykTechnologies/regexmatch/regexp"
)

const (
	matchCmdName = "match"
	matchCmdDesc = "Report whether a subject fully matches a pattern"

	batchCmdName = "batch"
	batchCmdDesc = "Match every case of a JSON file and print one result per line"

	stdinPath = "-"
)

// Case is one batch input. A missing or null field is passed on as absent.
type Case struct {
	Pattern *string `json:"pattern"`
	Subject *string `json:"subject"`
}

// Result is one batch output line.
type Result struct {
	Index   int     `json:"index"`
	Pattern *string `json:"pattern"`
	Subject *string `json:"subject"`
	Matched bool    `json:"matched"`
	Error   string  `json:"error,omitempty"`
}

type command struct {
	matcher func() *regexp.Matcher
	logger  log.Logger

	in  io.Reader
	out io.Writer

	pattern *string
	subject *string
	file    *string
}

// NewMatcher builds a Matcher from conf, configuring the shared logger on
// the way.
func NewMatcher(conf *config.Config) (*regexp.Matcher, error) {
	logger := log.Get()
	if conf.LogLevel != "" {
		logger.SetLevel(log.ParseLevel(conf.LogLevel))
	}
	logger.SetFormatter(log.NewFormatter(conf.LogFormat))

	engine, err := regexp.EngineByName(conf.Engine)
	if err != nil {
		return nil, err
	}

	cache, err := conf.Cache()
	if err != nil {
		return nil, err
	}

	return regexp.New(
		regexp.WithEngine(engine),
		regexp.WithCache(cache),
		regexp.WithLogger(logger.WithPrefix("regexp")),
	), nil
}

// Match is the action of the match subcommand.
func (c *command) Match(_ *kingpin.ParseContext) error {
	matched, err := c.matcher().Matches(*c.pattern, *c.subject)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.out, matched)
	return err
}

// Batch is the action of the batch subcommand. Every case is attempted;
// the returned error lists the ones that failed.
func (c *command) Batch(_ *kingpin.ParseContext) error {
	cases, err := c.loadCases(*c.file)
	if err != nil {
		return err
	}

	var (
		matcher = c.matcher()
		enc     = json.NewEncoder(c.out)
		results = make([]Result, 0, len(cases))
		errs    *multierror.Error
	)

	for i, tc := range cases {
		res := Result{Index: i, Pattern: tc.Pattern, Subject: tc.Subject}

		res.Matched, err = matcher.MatchesPtr(tc.Pattern, tc.Subject)
		if err != nil {
			res.Error = err.Error()
			errs = multierror.Append(errs, fmt.Errorf("case %d: %w", i, err))
		}

		if err := enc.Encode(res); err != nil {
			return err
		}
		results = append(results, res)
	}

	c.logger.WithFields(log.Fields{
		"cases":   len(results),
		"matched": lo.CountBy(results, func(r Result) bool { return r.Matched }),
		"failed":  lo.CountBy(results, func(r Result) bool { return r.Error != "" }),
	}).Info("Batch complete")

	return errs.ErrorOrNil()
}

func (c *command) loadCases(path string) ([]Case, error) {
	r := c.in
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var cases []Case
	if err := json.NewDecoder(r).Decode(&cases); err != nil {
		return nil, fmt.Errorf("couldn't decode cases from %s: %w", path, err)
	}
	return cases, nil
}

var cmd = &command{
	logger: log.Get().WithPrefix("batch"),
	in:     os.Stdin,
	out:    os.Stdout,
}

// AddTo registers the match and batch subcommands. matcher is called once
// per action, after flags and config have been processed.
func AddTo(app *kingpin.Application, matcher func() *regexp.Matcher) {
	cmd.matcher = matcher

	matchCmd := app.Command(matchCmdName, matchCmdDesc)
	cmd.pattern = matchCmd.Arg("pattern", "Regular expression").Required().String()
	cmd.subject = matchCmd.Arg("subject", "Text to test").Required().String()
	matchCmd.Action(cmd.Match)

	batchCmd := app.Command(batchCmdName, batchCmdDesc)
	cmd.file = batchCmd.Flag("file", "JSON array of {pattern, subject} cases, - for stdin").Short('f').Default(stdinPath).String()
	batchCmd.Action(cmd.Batch)
}
