package util

import (
	"os"
	"strconv"
	"time"
)

func GetEnvString(env, fallback string) string {
	envString := os.Getenv(env)
	if envString == "" {
		return fallback
	}
	return envString
}

func GetEnvBool(env string, fallback bool) bool {
	envBool, err := strconv.ParseBool(os.Getenv(env))
	if err != nil {
		return fallback
	}
	return envBool
}

func GetEnvInt(env string, fallback int) int {
	envInt, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		return fallback
	}
	return envInt
}

func GetEnvDuration(env string, fallback time.Duration) time.Duration {
	envDuration, err := time.ParseDuration(os.Getenv(env))
	if err != nil {
		return fallback
	}
	return envDuration
}
