// Package env reads deployment facts injected by the orchestrator.
package env

import "os"

const (
	podName    = "PODNAME"
	envName    = "ENV_NAME"
	appName    = "APP_NAME"
	configFile = "HBARMARKET_CONFIG"
)

func lookup(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// PodName example: hbarmarket-api-6868d88fbd-bz8zv
func PodName() string {
	return lookup(podName, "local")
}

// EnvName example: testnet
func EnvName() string {
	return lookup(envName, "dev")
}

// AppName is "api" or "marketctl".
func AppName() string {
	return lookup(appName, "hbarmarket")
}

// ConfigFile is the yaml configuration path, def unless HBARMARKET_CONFIG is set.
func ConfigFile(def string) string {
	return lookup(configFile, def)
}
