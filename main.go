package main

import (
	"log"

	"github.com/volodymyr-curly/university-sub001/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
