package constants

import "os"

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetOutDir is where exported MIDI files go unless --out is given.
func GetOutDir() string {
	return getEnv("OUT_PATH", "./out")
}

func GetListenAddr() string {
	return getEnv("LISTEN_ADDR", ":8080")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// middle C
const DefaultRoot = 60

const DebounceMillis = 150
