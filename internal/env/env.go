package env

import (
	"os"
	"strings"

	"github.com/receptro-ai/receptro/internal/envvar"
)

// Environment identifies the runtime environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv resolves the environment from RECEPTRO_ENV.
// Unknown or empty values resolve to Development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.ReceptroEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}
