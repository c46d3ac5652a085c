package main

import (
	"log"

	"github.com/ARomppainen/wunderpahkina-vol9/internal/cmd"
)

func main() {
	log.SetFlags(0)
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
