package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidEnvVar error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	jwtSecretFileEnvKey = "JWT_SECRET_FILE"
	tokenTTLEnvKey      = "TOKEN_TTL"
	bcryptCostEnvKey    = "BCRYPT_COST"
)

const defaultTokenTTL = 30 * time.Minute

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
}

func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, err := lookupSecret()
	if err != nil {
		return App{}, err
	}

	tokenTTL := defaultTokenTTL
	if raw, ok := os.LookupEnv(tokenTTLEnvKey); ok {
		tokenTTL, err = time.ParseDuration(raw)
		if err != nil || tokenTTL <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, tokenTTLEnvKey, raw)
		}
	}

	cost := bcrypt.DefaultCost
	if raw, ok := os.LookupEnv(bcryptCostEnvKey); ok {
		cost, err = strconv.Atoi(raw)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, bcryptCostEnvKey, raw)
		}
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		TokenTTL:        tokenTTL,
		BcryptCost:      cost,
	}, nil
}

// lookupSecret prefers JWT_SECRET and falls back to the file named by JWT_SECRET_FILE.
func lookupSecret() (string, error) {
	if secret, ok := os.LookupEnv(jwtSecretEnvKey); ok {
		if secret == "" {
			return "", fmt.Errorf("%w: %s is empty", errInvalidEnvVar, jwtSecretEnvKey)
		}
		return secret, nil
	}

	path, ok := os.LookupEnv(jwtSecretFileEnvKey)
	if !ok {
		return "", fmt.Errorf("%w: %s or %s", errEnvVarNotFound, jwtSecretEnvKey, jwtSecretFileEnvKey)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", jwtSecretFileEnvKey, err)
	}

	secret := strings.TrimSpace(string(content))
	if secret == "" {
		return "", fmt.Errorf("%w: %s points to an empty file", errInvalidEnvVar, jwtSecretFileEnvKey)
	}

	return secret, nil
}
