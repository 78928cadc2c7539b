// Package curveconfig exposes the two hard-coded constants spec.md §9
// flags as an Open Question — the futures-reconciliation tolerance and
// blend weight — as optional environment-variable overrides. Defaults
// match the spec literals exactly; nothing changes unless the caller
// sets the environment variable.
package curveconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultFuturesTolerance = 0.003
	defaultFuturesWeight    = 0.3 // weight applied to the raw futures rate

	envTolerance = "CURVEBOOT_FUTURES_TOLERANCE"
	envWeight    = "CURVEBOOT_FUTURES_WEIGHT"
)

var loaded bool

// Load reads a .env file if present (godotenv.Load is a no-op when the
// file is missing). Safe to call multiple times.
func Load() {
	if loaded {
		return
	}
	_ = godotenv.Load()
	loaded = true
}

// FuturesTolerance returns the 30bp reconciliation tolerance from
// spec.md §4.2, unless CURVEBOOT_FUTURES_TOLERANCE overrides it.
func FuturesTolerance() float64 {
	return floatEnv(envTolerance, defaultFuturesTolerance)
}

// FuturesWeight returns the weight applied to the raw (unadjusted)
// futures rate when blending toward the swap-implied rate, unless
// CURVEBOOT_FUTURES_WEIGHT overrides it. The swap-implied rate always
// receives the complementary weight (1 - FuturesWeight).
func FuturesWeight() float64 {
	return floatEnv(envWeight, defaultFuturesWeight)
}

func floatEnv(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
