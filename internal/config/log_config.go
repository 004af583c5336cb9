package config

import "strings"

type LogConfig interface {
	GetLogLevel() string
	GetLogFormat() string
}

type Logging struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

var _ LogConfig = Logging{}

func (l *Logging) sanitize() {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	if l.Format != "json" {
		l.Format = "text"
	}
}

func (l Logging) GetLogLevel() string {
	return l.Level
}

func (l Logging) GetLogFormat() string {
	return l.Format
}
