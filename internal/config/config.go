package config

import (
	"os"
)

type Config struct {
	ProjectID     string
	StorageBucket string
	WebAPIKey     string
	LogLevel      string
	Port          string
}

func New() *Config {
	return &Config{
		ProjectID:     os.Getenv("PROJECTID"),
		StorageBucket: os.Getenv("STORAGEBUCKET"),
		WebAPIKey:     os.Getenv("WEBAPIKEY"),
		LogLevel:      os.Getenv("LOGLEVEL"),
		Port:          getPort(os.Getenv("PORT")),
	}
}

func getPort(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}
