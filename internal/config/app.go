package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const DefaultPort = 8080

type App struct {
	Port        int
	BasePath    string
	CorsOrigins []string
}

func NewApp() (*App, error) {
	app := &App{
		Port:     DefaultPort,
		BasePath: strings.TrimSuffix(os.Getenv("APP_BASE_PATH"), "/"),
	}
	if portStr, ok := os.LookupEnv("APP_PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("APP_PORT must be a port number, got %q", portStr)
		}
		app.Port = port
	}
	if origins, ok := os.LookupEnv("APP_CORS_ORIGINS"); ok {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				app.CorsOrigins = append(app.CorsOrigins, origin)
			}
		}
	}
	return app, nil
}

func (a App) Addr() string {
	return fmt.Sprintf(":%d", a.Port)
}
