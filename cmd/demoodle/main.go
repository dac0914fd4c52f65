package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"demoodle/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// .env may set DEMOODLE_CONFIG; a missing file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
