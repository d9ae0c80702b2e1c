package main

import (
	"fmt"
	"log"
	"os"

	"contract-hub.backend/pkg/crypto"
)

var (
	printfFn      = fmt.Printf
	generateKeyFn = crypto.GenerateAPIKey
	hashKeyFn     = crypto.HashAPIKey
	fatalfFn      = log.Fatalf
)

// resolveKey returns the key to hash: either the one passed on the command
// line, or a freshly generated one.
func resolveKey(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return generateKeyFn()
}

func run(args []string) error {
	key, err := resolveKey(args)
	if err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	hash, err := hashKeyFn(key)
	if err != nil {
		return fmt.Errorf("failed to hash api key: %w", err)
	}

	printfFn("API key:  %s\n", key)
	printfFn("Set ADMIN_API_KEY_HASH to:\n%s\n", hash)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("%v", err)
	}
}
