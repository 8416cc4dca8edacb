package main

import (
	"fmt"
	"log"

	"github.com/futig/drive-consult/internal/builder"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("consult-backend: %v", err)
	}
}

func run() error {
	app, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	return app.Run()
}
