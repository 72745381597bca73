package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Cost model defaults. These are the tariffs the bundled network dataset was
// priced against; config.yml can override any of them.
const (
	DefaultPricePerKM          = 3.09
	DefaultFixedConnectionCost = 274.71
	DefaultSurfaceMultiplier   = 1.2
)

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./deploy/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Costs.PricePerKM == 0 {
		cfg.Costs.PricePerKM = DefaultPricePerKM
	}
	if cfg.Costs.FixedConnectionCost == 0 {
		cfg.Costs.FixedConnectionCost = DefaultFixedConnectionCost
	}
	if cfg.Costs.SurfaceMultipliers == nil {
		cfg.Costs.SurfaceMultipliers = map[string]float64{
			"paved":  1.0,
			"gravel": 1.3,
			"dirt":   1.6,
		}
	}
	if cfg.Costs.DefaultMultiplier == 0 {
		cfg.Costs.DefaultMultiplier = DefaultSurfaceMultiplier
	}
	if cfg.Search.Generations == 0 {
		cfg.Search.Generations = 1000
	}
	if cfg.Search.PopulationSize == 0 {
		cfg.Search.PopulationSize = 100
	}
	if cfg.Search.MutationRate == 0 {
		cfg.Search.MutationRate = 0.01
	}
}
