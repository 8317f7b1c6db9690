package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug             = "debug"
	ConfigFile              = "config"
	ConfigDBPath            = "db-path"
	ConfigNatsURL           = "nats-url"
	ConfigNatsSubjectPrefix = "nats-subject-prefix"
	ConfigStrictRack        = "strict-rack"
	ConfigTranscriptPath    = "transcript-path"
)

// InMemoryDB is the db-path value for a throwaway database.
const InMemoryDB = ":memory:"

type Config struct {
	*viper.Viper
	args []string
}

// Load reads settings from, in order of precedence, command-line flags,
// TILESCORE_* environment variables, an optional config file and the
// defaults. Flag parsing stops at the first non-flag argument; the rest
// are kept for Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("tilescore", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigFile, "", "read settings from this file (yaml, toml or json)")
	fs.String(ConfigDBPath, "", "sqlite database for saving games; empty to disable")
	fs.String(ConfigNatsURL, "", "NATS server to publish game updates to; empty to disable")
	fs.String(ConfigNatsSubjectPrefix, "tilescore.game", "subject prefix for game updates")
	fs.Bool(ConfigStrictRack, false, "require every new tile of a play to come from the rack")
	fs.String(ConfigTranscriptPath, "", "transcript to replay on startup")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("TILESCORE")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	if cf := c.GetString(ConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the arguments left after the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is every setting, with credentials stripped from the
// NATS URL, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if u, ok := settings[ConfigNatsURL].(string); ok && strings.Contains(u, "@") {
		scheme, rest, found := strings.Cut(u, "://")
		if !found {
			rest, scheme = scheme, ""
		}
		_, host, _ := strings.Cut(rest, "@")
		if scheme != "" {
			host = scheme + "://" + host
		}
		settings[ConfigNatsURL] = host
	}
	return settings
}

// AdjustRelativePaths anchors a relative database path at basepath, the
// directory of the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	basepath = filepath.Clean(basepath)
	p := c.GetString(ConfigDBPath)
	if p == "" || p == InMemoryDB || filepath.IsAbs(p) {
		return
	}
	c.Set(ConfigDBPath, filepath.Join(basepath, p))
}
