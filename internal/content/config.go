package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/planet-aqua/internal/game"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PLANET_AQUA_"

// LoadConfig decodes config.yaml from fsys over game.DefaultConfig. Keys
// the file leaves out keep their defaults; unknown keys are an error.
func LoadConfig(fsys fs.FS) (game.Config, error) {
	cfg := game.DefaultConfig()
	b, err := fs.ReadFile(fsys, ConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return game.Config{}, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return game.Config{}, fmt.Errorf("decode %s: %w", ConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("%s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// Overrides are the run settings that can be changed from the environment
// without editing config.yaml. Unset variables leave the field nil.
type Overrides struct {
	StartMoney         *float64 `env:"START_MONEY"`
	StartOceanToxicity *float64 `env:"START_OCEAN_TOXICITY"`
	StartFishHealth    *float64 `env:"START_FISH_HEALTH"`
	StartPublicSupport *float64 `env:"START_PUBLIC_SUPPORT"`
	StartYearlyIncome  *float64 `env:"START_YEARLY_INCOME"`
	BaseGrowthRate     *float64 `env:"BASE_GROWTH_RATE"`
	Generations        *int     `env:"GENERATIONS"`
	OfferSize          *int     `env:"OFFER_SIZE"`
	Ecology            *bool    `env:"ECOLOGY"`
}

// ParseEnv reads PLANET_AQUA_* variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment overrides on cfg and revalidates it.
func ApplyEnv(cfg *game.Config) error {
	var o Overrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	o.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

func (o Overrides) Apply(cfg *game.Config) {
	setFloat(&cfg.StartMoney, o.StartMoney)
	setFloat(&cfg.StartOceanToxicity, o.StartOceanToxicity)
	setFloat(&cfg.StartFishHealth, o.StartFishHealth)
	setFloat(&cfg.StartPublicSupport, o.StartPublicSupport)
	setFloat(&cfg.StartYearlyIncome, o.StartYearlyIncome)
	setFloat(&cfg.BaseGrowthRate, o.BaseGrowthRate)
	if o.Generations != nil {
		cfg.Generations = *o.Generations
	}
	if o.OfferSize != nil {
		cfg.OfferSize = *o.OfferSize
	}
	if o.Ecology != nil {
		cfg.Ecology.Enabled = *o.Ecology
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
