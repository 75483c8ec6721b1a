package main

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize                int           `env:"BUFFER_SIZE,default=64"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	LogLevel                  string        `env:"LOG_LEVEL,default=info"`
	Colours                   bool          `env:"COLOURS,default=false"`
	Report                    bool          `env:"REPORT,default=false"`
	ModerationWords           string        `env:"MODERATION_WORDS"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
