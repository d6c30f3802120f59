package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	etherscanKeyEnvKey = "ETHERSCAN_API_KEY"
	etherscanURLEnvKey = "ETHERSCAN_API_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
)

const (
	defaultPort         = "8080"
	defaultEtherscanURL = "https://api.etherscan.io/api"
)

type App struct {
	Port            string
	EtherscanAPIKey string
	EtherscanAPIURL string
	DBConnectionURL string
}

// NewApp builds the process configuration from the environment. A missing
// ETHERSCAN_API_KEY is fatal; a missing DB_CONNECTION_URL selects the
// in-memory store at bootstrap.
func NewApp() (App, error) {
	// best effort: a missing .env file is fine in containerized deploys
	_ = godotenv.Load()

	apiKey, ok := os.LookupEnv(etherscanKeyEnvKey)
	if !ok || apiKey == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, etherscanKeyEnvKey)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		port = defaultPort
	}

	baseURL, ok := os.LookupEnv(etherscanURLEnvKey)
	if !ok {
		baseURL = defaultEtherscanURL
	}

	return App{
		Port:            port,
		EtherscanAPIKey: apiKey,
		EtherscanAPIURL: baseURL,
		DBConnectionURL: os.Getenv(dbConnEnvKey),
	}, nil
}
