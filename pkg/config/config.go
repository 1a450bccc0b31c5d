package config

import (
	"os"
)

type EnvVarName string // should be caps with underscore

const (
	sshConfigPath EnvVarName = "XFER_SSH_CONFIG"
	sentryDSN     EnvVarName = "XFER_SENTRY_DSN"
	debug         EnvVarName = "XFER_DEBUG"
)

type ConstantsConfig struct{}

func NewConstants() *ConstantsConfig {
	return &ConstantsConfig{}
}

// GetSSHConfigPath returns the ssh client config override, empty when the
// per-user default should be used.
func (c ConstantsConfig) GetSSHConfigPath() string {
	return getEnvOrDefault(sshConfigPath, "")
}

func (c ConstantsConfig) GetSentryDSN() string {
	return getEnvOrDefault(sentryDSN, "")
}

func (c ConstantsConfig) GetDebug() bool {
	return getEnvOrDefault(debug, "") != ""
}

func getEnvOrDefault(envVarName EnvVarName, defaultVal string) string {
	val := os.Getenv(string(envVarName))
	if val == "" {
		return defaultVal
	}
	return val
}

var GlobalConfig = NewConstants()
