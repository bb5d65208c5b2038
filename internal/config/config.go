package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	nodeRPCEnvKey       = "NODE_RPC_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	tokenContractEnvKey = "TOKEN_CONTRACT"
	recipientEnvKey     = "RECIPIENT_ADDRESS"
	encryptionKeyEnvKey = "WALLET_ENCRYPTION_KEY"

	tokenDecimalsEnvKey  = "TOKEN_DECIMALS"
	basePriceEnvKey      = "LAND_BASE_PRICE"
	allowedOriginsEnvKey = "ALLOWED_ORIGINS"
	waitAttemptsEnvKey   = "RECEIPT_WAIT_ATTEMPTS"
	waitIntervalEnvKey   = "RECEIPT_WAIT_INTERVAL_SECONDS"
	tokenRegistryEnvKey  = "TOKEN_REGISTRY_FILE"
)

type App struct {
	Port            string
	NodeRPCURL      string
	DBConnectionURL string

	// payment verification
	TokenContract    string
	RecipientAddress string
	TokenDecimals    int
	LandBasePrice    float64

	// secrets at rest
	WalletEncryptionKey string

	// confirmation polling budget
	ReceiptWaitAttempts int
	ReceiptWaitInterval time.Duration

	AllowedOrigins string

	// optional allow-list for droppable tokens
	TokenRegistryFile string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(nodeRPCEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, nodeRPCEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	tokenContract, ok := os.LookupEnv(tokenContractEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, tokenContractEnvKey)
	}

	recipient, ok := os.LookupEnv(recipientEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, recipientEnvKey)
	}

	encryptionKey, ok := os.LookupEnv(encryptionKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, encryptionKeyEnvKey)
	}

	decimals, err := intEnvOrDefault(tokenDecimalsEnvKey, 6)
	if err != nil {
		return App{}, err
	}

	basePrice, err := floatEnvOrDefault(basePriceEnvKey, 1.0)
	if err != nil {
		return App{}, err
	}

	waitAttempts, err := intEnvOrDefault(waitAttemptsEnvKey, 30)
	if err != nil {
		return App{}, err
	}

	waitInterval, err := intEnvOrDefault(waitIntervalEnvKey, 2)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:                port,
		NodeRPCURL:          nodeURL,
		DBConnectionURL:     dbConn,
		TokenContract:       tokenContract,
		RecipientAddress:    recipient,
		TokenDecimals:       decimals,
		LandBasePrice:       basePrice,
		WalletEncryptionKey: encryptionKey,
		ReceiptWaitAttempts: waitAttempts,
		ReceiptWaitInterval: time.Duration(waitInterval) * time.Second,
		AllowedOrigins:      os.Getenv(allowedOriginsEnvKey),
		TokenRegistryFile:   os.Getenv(tokenRegistryEnvKey),
	}, nil
}

func intEnvOrDefault(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return val, nil
}

func floatEnvOrDefault(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return val, nil
}
