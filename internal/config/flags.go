package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps CLI flag names to configuration keys. Flags override
// file and environment values; call BindFlags before Load.
var flagBindings = map[string]string{
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"blocks":        "strip.blocks",
	"backup-suffix": "strip.backup_suffix",
	"port":          "server.port",
}

// BindFlags binds the overriding flags of fs into viper.
func BindFlags(fs *pflag.FlagSet) error {
	for flagName, key := range flagBindings {
		flag := fs.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}
