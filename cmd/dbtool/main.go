// Command dbtool prepares the kakanin database: it creates the PostgreSQL
// database, migrates the schema, imports orders from YAML and creates the
// administrator.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found (using environment variables)")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
