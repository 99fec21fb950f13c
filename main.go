package main

import (
	"log"

	"nutriwell_backend/internals/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
