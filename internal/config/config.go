package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	SourceDir string `mapstructure:"source"`
	OutputDir string `mapstructure:"output"`
	Variant   string `mapstructure:"variant"`
	Glossary  string `mapstructure:"glossary"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper. Values come from flags, the
// SKILLPORT_* environment, or a skillport.yaml config file, in that order.
// The source directory has no default on purpose: the original tool baked in
// one developer's local path, which is not portable.
func Init() error {
	viper.SetDefault("source", "")
	viper.SetDefault("output", "gemini-skills")
	viper.SetDefault("variant", "bilingual")
	viper.SetDefault("glossary", "")

	viper.SetConfigName("skillport")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "skillport"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SKILLPORT")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetSource returns the skill source directory with tilde expansion
func GetSource() string {
	return expandTilde(viper.GetString("source"))
}

// GetOutput returns the output directory with tilde expansion
func GetOutput() string {
	return expandTilde(viper.GetString("output"))
}

// GetVariant returns the conversion variant name
func GetVariant() string {
	return viper.GetString("variant")
}

// GetGlossary returns the path of an optional glossary overlay file
func GetGlossary() string {
	return expandTilde(viper.GetString("glossary"))
}

// SetSource sets the source directory at runtime
func SetSource(path string) {
	viper.Set("source", path)
	C.SourceDir = path
}

// SetOutput sets the output directory at runtime
func SetOutput(path string) {
	viper.Set("output", path)
	C.OutputDir = path
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
