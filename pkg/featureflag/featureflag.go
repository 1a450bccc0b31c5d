package featureflag

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/xferdev/xfer-cli/pkg/cmd/version"
	"github.com/xferdev/xfer-cli/pkg/config"
)

func IsDev() bool {
	if viper.IsSet("feature.dev") {
		return viper.GetBool("feature.dev")
	}
	return strings.HasPrefix(version.Version, "dev")
}

func Debug() bool {
	return viper.GetBool("feature.debug") || config.GlobalConfig.GetDebug()
}

func LoadFeatureFlags(path string) error {
	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/xfer/")
	viper.AddConfigPath(path)
	viper.SetEnvPrefix("xfer")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig() // a missing config file is fine

	return nil
}
