//go:build ignore

// This script generates secrets for the carry-on service.
// Run with: go run scripts/generate_keys.go [operator-name]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func mustKey(length int, what string) string {
	key, err := generateSecureKey(length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
		os.Exit(1)
	}
	return key
}

func main() {
	operator := "ops"
	if len(os.Args) > 1 {
		operator = os.Args[1]
	}

	jwtSecret := mustKey(32, "JWT secret")
	apiKey := mustKey(24, "API key")
	operatorKey := mustKey(24, "operator key")

	hash, err := bcrypt.GenerateFromPassword([]byte(operatorKey), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing operator key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Carry-on Service Key Generator ===")
	fmt.Println()
	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (read endpoints, when AUTH_ENABLED=true)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("# Operator key hash (airline writes)")
	fmt.Printf("OPERATOR_KEYS=%s:%s\n", operator, hash)
	fmt.Println()
	fmt.Printf("Give operator %q this key for X-Operator-Key (it is not stored anywhere):\n", operator)
	fmt.Println(operatorKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
}
