package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment overrides to a definition's simulation
// settings. Unset or malformed variables leave the definition untouched.
func FromEnv(def Definition) Definition {
	if v := getEnvFloat("CLICKER_STEP_SECONDS"); v > 0 {
		def.Simulation.StepSeconds = v
	}
	if v := getEnvFloat("CLICKER_DURATION_SECONDS"); v > 0 {
		def.Simulation.DurationSeconds = v
	}
	if v := getEnvInt("CLICKER_SEED"); v != 0 {
		def.Simulation.Seed = v
	}
	if v := getEnvFloat("CLICKER_SPEED_MULTIPLIER"); v > 0 {
		def.World.SpeedMultiplier = v
	}
	return def
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}

func getEnvInt(key string) int64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return num
}
