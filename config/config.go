package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file, config.yaml and the
// environment, in that order. Environment variables override values from the
// config file. All defaults live here so the rest of the process reads viper
// without fallbacks.
func LoadConfig() {
	// Load environment variables from .env if present.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config") // config file name (without extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // look in the working directory
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The single storage location for the registry and the message store.
	viper.SetDefault("database.path", "data/summarizer.db")

	// Summarization service. The default base URL is Gemini's
	// OpenAI-compatible endpoint; any compatible provider works.
	viper.SetDefault("summarizer.base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")
	viper.SetDefault("summarizer.model", "gemini-2.0-flash")
	viper.SetDefault("summarizer.message_limit", 1000)

	// Optional scheduled digests.
	viper.SetDefault("digest.enabled", false)
	viper.SetDefault("digest.schedule", "0 9 * * *")
	viper.SetDefault("digest.hours", 5)

	// Optional HTTP status API.
	viper.SetDefault("server.enabled", false)
	viper.SetDefault("server.port", "8080")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is fine; environment variables and defaults apply.
			log.Printf("Config file not found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}
