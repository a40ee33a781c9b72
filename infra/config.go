package infra

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"
	"time"
)

const (
	secretKeyLength  = 32
	secretKeyCharset = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Config holds the process-wide settings, loaded once at startup and passed
// explicitly to the components that need them.
type Config struct {
	Port           string
	SecretKey      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

func LoadConfig() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		SecretKey:      loadSecretKey(),
		TokenTTL:       time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	return cfg
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// loadSecretKey returns the token signing key from SECRET_KEY, generating a
// new one and appending it to .env when absent. Replacing the key invalidates
// every outstanding token.
func loadSecretKey() string {
	if key := os.Getenv("SECRET_KEY"); key != "" {
		return key
	}

	log.Println("SECRET_KEY not found, generating a new one...")
	key, err := generateSecretKey(secretKeyLength)
	if err != nil {
		panic(fmt.Sprintf("Failed to generate secret key: %v", err))
	}

	file, err := os.OpenFile(".env", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		log.Printf("Failed to persist SECRET_KEY to .env: %v", err)
	} else {
		fmt.Fprintf(file, "SECRET_KEY=%s\n", key)
		file.Close()
		log.Println("Generated and stored SECRET_KEY in .env")
	}

	os.Setenv("SECRET_KEY", key)
	return key
}

func generateSecretKey(length int) (string, error) {
	key := make([]byte, length)
	for i := range key {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(secretKeyCharset))))
		if err != nil {
			return "", err
		}
		key[i] = secretKeyCharset[n.Int64()]
	}
	return string(key), nil
}
