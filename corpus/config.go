package corpus

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigFile = "config.json"

// Config aggregates the tunable pipeline parameters. The header synonym
// lists, printable threshold and split percentages are documented defaults,
// not contracts, so they are all overridable via config.json or environment.
type Config struct {
	HeadwordColumns   []string `json:"headwordColumns"   env:"CORPUS_HEADWORD_COLUMNS"`
	DefinitionColumns []string `json:"definitionColumns" env:"CORPUS_DEFINITION_COLUMNS"`
	POSColumns        []string `json:"posColumns"        env:"CORPUS_POS_COLUMNS"`
	ExampleColumns    []string `json:"exampleColumns"    env:"CORPUS_EXAMPLE_COLUMNS"`

	MinTokens           int     `json:"minTokens"           env:"CORPUS_MIN_TOKENS"`
	CompletionMinTokens int     `json:"completionMinTokens" env:"CORPUS_COMPLETION_MIN_TOKENS"`
	PrintableThreshold  float64 `json:"printableThreshold"  env:"CORPUS_PRINTABLE_THRESHOLD"`

	TrainPercent      int `json:"trainPercent"      env:"CORPUS_TRAIN_PERCENT"`
	ValidationPercent int `json:"validationPercent" env:"CORPUS_VALIDATION_PERCENT"`

	Workers int `json:"workers" env:"CORPUS_WORKERS"`
}

// LoadConfig loads configuration from the given path or the default
// config.json, falling back to environment variables when no file exists.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("read env config: %w", err)
		}
		cfg.ApplyDefaults()
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults populates zero values with sensible defaults and clamps
// out-of-range parameters.
func (c *Config) ApplyDefaults() {
	if len(c.HeadwordColumns) == 0 {
		c.HeadwordColumns = []string{"fijian_word", "word", "headword", "vosa"}
	}
	if len(c.DefinitionColumns) == 0 {
		c.DefinitionColumns = []string{"english_definition", "definition", "meaning", "gloss"}
	}
	if len(c.POSColumns) == 0 {
		c.POSColumns = []string{"part_of_speech", "pos"}
	}
	if len(c.ExampleColumns) == 0 {
		c.ExampleColumns = []string{"example", "example_sentence", "usage"}
	}
	if c.MinTokens <= 0 {
		c.MinTokens = 3
	}
	if c.CompletionMinTokens <= 0 {
		c.CompletionMinTokens = 6
	}
	if c.CompletionMinTokens < c.MinTokens {
		c.CompletionMinTokens = c.MinTokens
	}
	if c.PrintableThreshold <= 0 || c.PrintableThreshold > 1 {
		c.PrintableThreshold = 0.95
	}
	if c.TrainPercent <= 0 || c.TrainPercent >= 100 {
		c.TrainPercent = 80
	}
	if c.ValidationPercent <= 0 || c.TrainPercent+c.ValidationPercent >= 100 {
		c.ValidationPercent = 10
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}
