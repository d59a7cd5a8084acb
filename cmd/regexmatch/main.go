package main

import (
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"

	"github.com/TykTechnologies/regexmatch/cli/match"
	"github.com/TykTechnologies/regexmatch/config"
	"github.com/TykTechnologies/regexmatch/regexp"
)

const (
	appName = "regexmatch"
	appDesc = "Full-string regular expression matching with a compiled pattern cache."
)

var defaultConfPaths = []string{
	"regexmatch.json",
	"/etc/regexmatch/regexmatch.json",
}

func main() {
	app := kingpin.New(appName, appDesc)
	app.HelpFlag.Short('h')

	confPath := app.Flag("conf", "Load a named configuration file").PlaceHolder("FILE").String()

	var matcher *regexp.Matcher
	app.PreAction(func(*kingpin.ParseContext) error {
		paths := defaultConfPaths
		if *confPath != "" {
			paths = []string{*confPath}
		}

		var conf config.Config
		if err := config.Load(paths, &conf); err != nil {
			return err
		}

		var err error
		matcher, err = match.NewMatcher(&conf)
		return err
	})

	match.AddTo(app, func() *regexp.Matcher {
		return matcher
	})

	kingpin.MustParse(app.Parse(os.Args[1:]))
}
