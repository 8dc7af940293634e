package main

import (
	"log"

	"github.com/psds-microservice/medicine-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
