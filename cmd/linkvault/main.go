package main

import (
	"log"

	"github.com/linkvault/linkvault/internal/app"
)

func main() {
	a := app.New()
	if err := a.Run(); err != nil {
		log.Fatalf("linkvault exited with error: %v", err)
	}
}
