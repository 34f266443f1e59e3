package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	AtRest     AtRest
	Blob       Blob
	Keyring    Keyring
	LoggerMode LoggerMode
}

type Server struct {
	Environment string
}

type BunConfig struct {
	DSN string
}

// AtRest configures the optional server-held encryption layer applied over
// stored ciphertext. Key is base64, 32 bytes decoded.
type AtRest struct {
	Enabled bool
	Key     string
}

// Blob configures where oversized ciphertext payloads are offloaded.
// S3Bucket takes precedence over Dir when set.
type Blob struct {
	Dir         string
	S3Bucket    string
	InlineLimit int
}

type Keyring struct {
	Dir string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
