package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds defaults taken from the environment; flags override them.
type Config struct {
	DESKey    string
	Avalanche AvalancheConfig
}

type AvalancheConfig struct {
	Samples int
	Seed    uint64
}

// loadConfig reads CIPHERLAB_* environment variables.
func loadConfig() *Config {
	return &Config{
		DESKey: getEnv("CIPHERLAB_DES_KEY", "0123456789ABCDEF"),
		Avalanche: AvalancheConfig{
			Samples: getEnvInt("CIPHERLAB_AVALANCHE_SAMPLES", 100),
			Seed:    getEnvUint("CIPHERLAB_AVALANCHE_SEED", 1),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if uintVal, err := strconv.ParseUint(value, 0, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func (c *Config) String() string {
	return fmt.Sprintf("des key: %s, avalanche samples: %d, avalanche seed: %d",
		c.DESKey, c.Avalanche.Samples, c.Avalanche.Seed)
}
