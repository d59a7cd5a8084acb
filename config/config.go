package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/kelseyhightower/envconfig"

	"github.com/TykTechnologies/regexmatch/regexp"
)

const envPrefix = "REGEXMATCH"

// Config holds the settings of the regexmatch binary.
type Config struct {
	// Engine selects the regexp engine, "re2" or "regexp2".
	Engine string `json:"engine"`

	// CacheSize bounds the pattern cache. Zero keeps every compiled
	// pattern for the lifetime of the process.
	CacheSize int `json:"cache_size" split_words:"true"`

	// LogLevel is read from REGEXMATCH_LOGLEVEL, the variable log.Get uses.
	LogLevel  string `json:"log_level" envconfig:"LOGLEVEL"`
	LogFormat string `json:"log_format" split_words:"true"`

	// OriginalPath is the file the config was read from, if any.
	OriginalPath string `json:"-" ignored:"true"`
}

var Default = Config{
	Engine:    regexp.EngineRE2,
	LogFormat: "default",
}

// Load reads the first of paths that can be opened, then applies
// REGEXMATCH_* environment overrides. When no path exists the defaults
// are used.
//
// An error will be returned only if any of the paths existed but was
// not a valid config file, or if the result fails validation.
func Load(paths []string, conf *Config) error {
	*conf = Default

	for _, path := range paths {
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		err = json.NewDecoder(f).Decode(conf)
		f.Close()
		if err != nil {
			return fmt.Errorf("couldn't unmarshal config %s: %w", path, err)
		}
		conf.OriginalPath = path
		break
	}

	if err := envconfig.Process(envPrefix, conf); err != nil {
		return fmt.Errorf("failed to process config env vars: %w", err)
	}

	return conf.Validate()
}

func (c *Config) Validate() error {
	if _, err := regexp.EngineByName(c.Engine); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Cache returns the pattern cache described by the config.
func (c *Config) Cache() (regexp.Cache, error) {
	if c.CacheSize == 0 {
		return regexp.NewMapCache(), nil
	}
	return regexp.NewLRUCache(c.CacheSize)
}
