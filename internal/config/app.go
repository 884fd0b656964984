package config

import (
	"os"
	"path/filepath"
)

func LogFile() string {
	path, ok := os.LookupEnv("MINES_LOG_FILE")
	if !ok || path == "" {
		return filepath.Join(os.TempDir(), "mines.log")
	}
	return path
}
