package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var validate = validator.New()

// Config is the benchmark matrix. Every chain benchmark builds width
// subscriptions of depth chained Maps on one Source.
type Config struct {
	Widths      []int  `koanf:"widths" validate:"required,min=1,dive,min=1"`
	Depths      []int  `koanf:"depths" validate:"required,min=1,dive,min=1"`
	Iterations  int    `koanf:"iterations" validate:"min=1"`
	Combinators bool   `koanf:"combinators"`
	LogLevel    string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
}

func DefaultConfig() Config {
	return Config{
		Widths:      []int{1, 10, 100, 1_000},
		Depths:      []int{1, 10, 100},
		Iterations:  100,
		Combinators: true,
		LogLevel:    "info",
	}
}

func defaultConfigAsMap() map[string]any {
	def := DefaultConfig()
	return map[string]any{
		"widths":      def.Widths,
		"depths":      def.Depths,
		"iterations":  def.Iterations,
		"combinators": def.Combinators,
		"log_level":   def.LogLevel,
	}
}

// LoadConfig layers the defaults, the optional yaml file at path and the
// overrides, in that order. A missing file is not an error.
func LoadConfig(path string, overrides map[string]any) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultConfigAsMap(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("checking config file %s: %w", path, err)
		default:
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
