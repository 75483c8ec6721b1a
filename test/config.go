package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BufferSize      int    `envconfig:"LAB_BUFFER_SIZE" default:"64"`
	RestartInterval string `envconfig:"LAB_RESTART_INTERVAL" default:"50ms"`
	ModerationWords string `envconfig:"LAB_MODERATION_WORDS" default:"badword"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
