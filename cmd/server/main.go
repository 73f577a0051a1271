package main

import (
	"log"

	"github.com/andrewsvn/encoding-overseer/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
