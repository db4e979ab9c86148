// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envLoaded = false

func LoadEnvFile() {
	if envLoaded {
		return
	}
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			envFile := args[i+1]
			fmt.Printf("Loading environment variables from file: %s\n", envFile)
			if err := godotenv.Load(envFile); err != nil {
				fmt.Printf("Failed to load env file: %s\n", err)
			}
			envLoaded = true
			return
		}
	}
	envLoaded = true
}

func GetEnv(key, fallback string) string {
	LoadEnvFile()
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
