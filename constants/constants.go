package constants

import (
	"log/slog"
	"os"
	"strings"
)

func GetListenAddr() string {
	addr := os.Getenv("CHORDPROG_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetAllowedOrigins() []string {
	origins := os.Getenv("CHORDPROG_CORS_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

func GetLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("CHORDPROG_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// middle C sits in octave 4
const DefaultOctave = 4

const DefaultChannel = 0

const DefaultVelocity = 100

const DefaultKey = "C"

const DefaultMode = "ionian"
