package main

import (
	"log"

	"github.com/opsrig/hostdec/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ hostdec failed to start: %v", err)
	}
}
