package main

import (
	"log"

	"github.com/MrSnakeDoc/bookshelf/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ bookshelf failed to initialize: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ bookshelf failed to start: %v", err)
	}
}
