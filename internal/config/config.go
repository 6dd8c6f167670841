package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hasbyte1/argonia/hashing"
)

// Config aggregates runtime configuration for the argonia command.
type Config struct {
	Logger  LoggerConfig
	Hashing HashingConfig
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// HashingConfig holds the cost parameters used for new hashes. Verification
// never reads it.
type HashingConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLength   uint32
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying the library defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	def := hashing.DefaultParams()

	memory, err := getEnvAsUint("ARGONIA_MEMORY", uint64(def.Memory), 32)
	if err != nil {
		return nil, err
	}
	iterations, err := getEnvAsUint("ARGONIA_TIME", uint64(def.Time), 32)
	if err != nil {
		return nil, err
	}
	parallelism, err := getEnvAsUint("ARGONIA_PARALLELISM", uint64(def.Threads), 8)
	if err != nil {
		return nil, err
	}
	keyLength, err := getEnvAsUint("ARGONIA_KEY_LENGTH", uint64(def.KeyLen), 32)
	if err != nil {
		return nil, err
	}

	return &Config{
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "warn"),
		},
		Hashing: HashingConfig{
			Memory:      uint32(memory),
			Time:        uint32(iterations),
			Parallelism: uint8(parallelism),
			KeyLength:   uint32(keyLength),
		},
	}, nil
}

// Params converts the configuration into hashing parameters. The result is
// not validated here; hashing.NewHasher does that.
func (h HashingConfig) Params() hashing.Params {
	return hashing.Params{
		Memory:  h.Memory,
		Time:    h.Time,
		Threads: h.Parallelism,
		KeyLen:  h.KeyLength,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsUint(key string, fallback uint64, bitSize int) (uint64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseUint(val, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
