package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// NetworkConfig points at the road network dataset loaded at startup
type NetworkConfig struct {
	RoadsPath string `yaml:"roadsPath" validate:"required"`
}

// CostConfig holds the transport cost model.
//
// Road edges cost lengthKM * pricePerKM * surface multiplier. Attachment and
// bridge edges cost lengthKM * pricePerKM + fixedConnectionCost. Surfaces not
// listed in surfaceMultipliers receive defaultMultiplier, which is distinct
// from every named multiplier.
type CostConfig struct {
	PricePerKM          float64            `yaml:"pricePerKM" validate:"gt=0"`
	FixedConnectionCost float64            `yaml:"fixedConnectionCost" validate:"gte=0"`
	SurfaceMultipliers  map[string]float64 `yaml:"surfaceMultipliers"`
	DefaultMultiplier   float64            `yaml:"defaultMultiplier" validate:"gt=0"`
}

// SearchConfig tunes the genetic search.
type SearchConfig struct {
	Generations    int     `yaml:"generations" validate:"gt=0"`
	PopulationSize int     `yaml:"populationSize" validate:"gt=0"`
	MutationRate   float64 `yaml:"mutationRate" validate:"gte=0,lte=1"`
	// Workers bounds the fitness evaluation pool; 0 means one worker per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`
	// Seed fixes the search RNG for reproducible runs; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Network NetworkConfig `yaml:"network" validate:"required"`
	Costs   CostConfig    `yaml:"costs"`
	Search  SearchConfig  `yaml:"search"`
}
