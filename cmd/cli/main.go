package main

import (
	"context"
	"log"

	"github.com/dvergara2005/shopkeeper/internal/cli"
	"github.com/dvergara2005/shopkeeper/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
