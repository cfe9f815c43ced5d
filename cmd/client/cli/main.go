package main

import (
	"context"
	"log"

	"github.com/keyfold/keyfold/internal/client/cli"
	"github.com/keyfold/keyfold/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
