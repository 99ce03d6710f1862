package game

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "zero generations", mutate: func(c *Config) { c.Generations = 0 }, want: "generations must be positive"},
		{name: "zero length", mutate: func(c *Config) { c.GenerationLength = 0 }, want: "generation length"},
		{name: "no offer", mutate: func(c *Config) { c.OfferSize = 0 }, want: "offer size"},
		{name: "toxicity out of range", mutate: func(c *Config) { c.StartOceanToxicity = 140 }, want: "start ocean toxicity"},
		{name: "start already lost", mutate: func(c *Config) { c.StartFishHealth = 0 }, want: "loss condition"},
		{name: "win fish at loss line", mutate: func(c *Config) { c.WinFishAtLeast = 0 }, want: "win fish"},
		{name: "no eras", mutate: func(c *Config) { c.Eras = nil }, want: "era"},
		{name: "eras out of order", mutate: func(c *Config) { c.Eras[1].FromGeneration = 30 }, want: "ordered"},
		{name: "duplicate era", mutate: func(c *Config) { c.Eras[2].Era = EraEarly }, want: "duplicate era"},
		{name: "ascending bands", mutate: func(c *Config) { c.Ecology.FishDecline[1].AtLeast = 99 }, want: "descending"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestGenerationAndEra(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartYear = 2000

	tests := []struct {
		year       int
		generation int
		era        Era
	}{
		{year: 2000, generation: 0, era: EraEarly},
		{year: 2024, generation: 4, era: EraEarly},
		{year: 2025, generation: 5, era: EraDiscovery},
		{year: 2050, generation: 10, era: EraAwakening},
		{year: 2100, generation: 20, era: EraTransformation},
		{year: 2145, generation: 29, era: EraLate},
	}
	for _, tc := range tests {
		gen := cfg.GenerationOf(tc.year)
		if gen != tc.generation {
			t.Fatalf("GenerationOf(%d) = %d, want %d", tc.year, gen, tc.generation)
		}
		if got := cfg.EraFor(gen).Era; got != tc.era {
			t.Fatalf("EraFor(%d) = %s, want %s", gen, got, tc.era)
		}
	}
	if cfg.EndYear() != 2150 {
		t.Fatalf("EndYear() = %d, want 2150", cfg.EndYear())
	}
}

func TestGenerationName(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.GenerationName(0); got != "Generation 1" {
		t.Fatalf("fallback name = %q", got)
	}
	cfg.GenerationNames = []string{"The Founders", "The Builders"}
	if got := cfg.GenerationName(1); got != "The Builders" {
		t.Fatalf("named generation = %q", got)
	}
}
