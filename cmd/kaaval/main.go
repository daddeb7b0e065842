package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kaaval-labs/kaaval-cli/internal/adapters/driving/cli"
)

// version is overridden at build time:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/kaaval
var version = "dev"

func main() {
	// Local .env is a convenience for development; missing is fine.
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
