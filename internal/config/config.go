package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Generation holds all configuration for a ruin-generation pass.
type Generation struct {
	// Proximity-driven derivation of scatter parameters. When disabled the
	// scatter defaults apply verbatim.
	ProximityEnabled bool `yaml:"proximity_enabled"`

	// Scatter defaults for the common policy.
	Scatter ScatterConfig `yaml:"scatter"`

	// Snapshot store
	Database DatabaseConfig `yaml:"database"`
}

// ScatterConfig mirrors the tunable scatter defaults.
type ScatterConfig struct {
	DensityMultiplier       float64 `yaml:"density_multiplier"`
	MinRadius               float64 `yaml:"min_radius"`
	MaxRadius               float64 `yaml:"max_radius"`
	ScavengingMultiplier    float64 `yaml:"scavenging_multiplier"`
	DeteriorationMultiplier float64 `yaml:"deterioration_multiplier"`
	HostileChance           float64 `yaml:"hostile_chance"`
	ItemCostLimit           float64 `yaml:"item_cost_limit"`
	DeleteLowQuality        bool    `yaml:"delete_low_quality"`
	ClaimableBlocks         bool    `yaml:"claimable_blocks"`
	AllowFriendlyRaids      bool    `yaml:"allow_friendly_raids"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGeneration returns Generation config with sensible defaults.
func DefaultGeneration() Generation {
	return Generation{
		ProximityEnabled: true,
		Scatter: ScatterConfig{
			DensityMultiplier:    1.0,
			MinRadius:            8,
			MaxRadius:            16,
			ScavengingMultiplier: 1.0,
			HostileChance:        0.1,
			ItemCostLimit:        1000,
			DeleteLowQuality:     true,
			ClaimableBlocks:      true,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "ruingen",
			Password: "ruingen",
			DBName:   "ruingen",
			SSLMode:  "disable",
		},
	}
}

// LoadGeneration loads generation config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGeneration(path string) (Generation, error) {
	cfg := DefaultGeneration()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
