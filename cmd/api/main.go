package main

import (
	"fmt"
	"net/http"
	"os"

	"intrinsic_value/pkg/api/valuation"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// ServerConfig is the shape of config/server.yaml.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	// Read server config; a missing file falls through to the default.
	cfg := ServerConfig{Addr: ":8080"}
	if data, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[API] bad config/server.yaml: %v\n", err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	// Valuation endpoints
	http.HandleFunc(valuation.Route, valuation.HandleCalculate)

	fmt.Printf("API server starting on %s...\n", cfg.Addr)
	fmt.Printf("  - POST %s\n", valuation.Route)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		fmt.Printf("[API] server stopped: %v\n", err)
		os.Exit(1)
	}
}
