package envar

import (
	"os"
	"strconv"
)

const (
	SpritecutVerbose = "SPRITECUT_VERBOSE"
	SpritecutQuiet   = "SPRITECUT_QUIET"
	SpritecutSrc     = "SPRITECUT_SRC"
	SpritecutOutput  = "SPRITECUT_OUTPUT"
)

func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

// GetBool
// "1" and "true" switch on, "0" and "false" switch off,
// any other non-empty value counts as on.
func GetBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return true
	}
	return b
}
