package core

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug            bool
	TestMode         bool
	AppName          string
	DefaultFromEmail string
	SeedDemoData     bool

	Database struct {
		Engine string // memory (default) | sqlite
	}
}

// NewConfig loads the configuration from the environment, applying defaults
// so the application runs with no environment at all. Variables are prefixed
// with DARASA (eg. DARASA_DATABASE_ENGINE); an optional .env file in the
// working directory is loaded first.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("seedDemoData", true)
	v.SetDefault("database.engine", "memory")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(.env): %v", err)
	}

	v.SetEnvPrefix("darasa")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		log.Fatalf("config.viper.Unmarshal: %v", err)
	}
	if strings.EqualFold(os.Getenv("ENV"), "TEST") {
		conf.TestMode = true
	}
	return &conf
}
