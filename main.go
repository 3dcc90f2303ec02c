package main

import (
	"log"

	"github.com/uniinone/uniinone-api/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
