package main

import (
	"log"

	"github.com/mithrel/readmegen/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("readmegen: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
