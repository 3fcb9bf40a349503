package config

import "os"

type Config struct {
	ServerPort  string
	GinMode     string
	MaxFileSize int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "debug"
	}

	return &Config{
		ServerPort:  serverPort,
		GinMode:     ginMode,
		MaxFileSize: 10 * 1024 * 1024, // 10 MB
	}
}
