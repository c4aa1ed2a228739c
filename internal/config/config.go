package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	dbNameEnvKey        = "DB_NAME"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
	bindAddrEnvKey      = "BIND_ADDR"
	apiPortEnvKey       = "API_PORT"
)

type App struct {
	DBName          string
	DBConnectionURL string
	SessionSecret   string
	BindAddr        string
	Port            string
}

func NewApp() (App, error) {

	dbName, ok := os.LookupEnv(dbNameEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbNameEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	bindAddr, ok := os.LookupEnv(bindAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, bindAddrEnvKey)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	return App{
		DBName:          dbName,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
		BindAddr:        bindAddr,
		Port:            port,
	}, nil
}
