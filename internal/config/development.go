package config

import (
	"os"
	"strings"
)

// Development is switched on by any DEVELOPMENT value other than "", "0"
// and "false".
func Development() bool {
	switch strings.ToLower(os.Getenv("DEVELOPMENT")) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
