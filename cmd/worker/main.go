package main

import (
	"log"

	"go-jewel-storefront/internal/app"
)

func main() {
	if err := app.RunWorker(); err != nil {
		log.Fatalf("[WORKER] %v", err)
	}
}
