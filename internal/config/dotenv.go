package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenv files in priority order; godotenv never overwrites variables
// already present, so the process environment wins over .env.local,
// which wins over .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads whichever dotenv files exist in the working
// directory and returns their names.
func LoadDotEnv() []string {
	var found []string
	for _, name := range dotenvFiles {
		if _, err := os.Stat(name); err == nil {
			found = append(found, name)
		}
	}
	if len(found) == 0 {
		return nil
	}
	_ = godotenv.Load(found...)
	return found
}
