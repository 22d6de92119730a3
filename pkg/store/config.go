package store

import (
	"os"

	"github.com/spf13/viper"
)

// Config carries the tunables the planner exposes. Every knob has a
// default matching the observed behavior, so a missing config file is
// never an error.
type Config struct {
	// GestureThreshold is the vertical drag distance that flips a pan
	// into a month switch.
	GestureThreshold int

	// UpcomingLimit caps the upcoming strip.
	UpcomingLimit int

	// MediaMaxBytes bounds attached media size. Zero means unbounded.
	MediaMaxBytes int64

	// MediaTypes is the allowed media type list (e.g. "image", "video").
	// Empty means any type is accepted.
	MediaTypes []string

	// GenAIModel and GenAIAPIKey configure the caption generator.
	GenAIModel  string
	GenAIAPIKey string
}

// LoadConfig reads .planner.yaml from the working directory (or the
// directory named by PLANNER_CONFIG_PATH) and merges PLANNER_* environment
// overrides on top of the defaults.
func LoadConfig() (*Config, error) {
	viper.SetDefault("gesture.threshold", 200)
	viper.SetDefault("upcoming.limit", 15)
	viper.SetDefault("media.max_bytes", 0)
	viper.SetDefault("media.types", []string{})
	viper.SetDefault("genai.model", "gemini-2.5-flash")
	viper.SetConfigName(".planner") // .yaml is implicit
	viper.SetEnvPrefix("PLANNER")
	viper.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		GestureThreshold: viper.GetInt("gesture.threshold"),
		UpcomingLimit:    viper.GetInt("upcoming.limit"),
		MediaMaxBytes:    viper.GetInt64("media.max_bytes"),
		MediaTypes:       viper.GetStringSlice("media.types"),
		GenAIModel:       viper.GetString("genai.model"),
		GenAIAPIKey:      viper.GetString("genai.api_key"),
	}, nil
}
