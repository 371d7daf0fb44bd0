package main

import (
	"log"

	"go-jewel-storefront/internal/app"
)

func main() {
	if err := app.RunConsumer(); err != nil {
		log.Fatalf("[CONSUMER] %v", err)
	}
}
