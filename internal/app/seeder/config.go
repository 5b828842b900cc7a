package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data sizes.
type Config struct {
	Engineers         int   `yaml:"engineers"           env:"SEEDER_ENGINEERS"           env-default:"4"`
	Projects          int   `yaml:"projects"            env:"SEEDER_PROJECTS"            env-default:"2"`
	StagesPerProject  int   `yaml:"stages_per_project"  env:"SEEDER_STAGES_PER_PROJECT"  env-default:"3"`
	DefectsPerProject int   `yaml:"defects_per_project" env:"SEEDER_DEFECTS_PER_PROJECT" env-default:"20"`
	RandSeed          int64 `yaml:"rand_seed"           env:"SEEDER_RAND_SEED"           env-default:"1"`
	DryRun            bool  `yaml:"dry_run"             env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
