package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "LUNA"

// Services holds the base URLs of the remote backends every screen
// delegates to. The gateway passes this into the transport client at
// construction, so tests can point the client at a local server.
type Services struct {
	CalcServiceURL   string `split_words:"true" default:"http://localhost:8000"`
	ChatServiceURL   string `split_words:"true" default:"http://localhost:8000"`
	FoodAnalysisURL  string `split_words:"true" default:"http://localhost:8000/analyse"`
	ReportServiceURL string `split_words:"true" default:"http://localhost:8000/report-incident"`
}

// AppConfig embeds Services anonymously so envconfig keeps the flat
// LUNA_ variable names instead of a LUNA_SERVICES_ prefix.
type AppConfig struct {
	Port string `default:"8080"`
	Services
}

// Load reads the application configuration from the environment.
// Variables use the LUNA_ prefix (LUNA_CALC_SERVICE_URL and so on) and
// every value has a working local default.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

// LoadDotEnv pulls a .env file into the process environment when one
// exists. Missing files are fine: deployments set real variables.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}
}
