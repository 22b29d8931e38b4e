package main

import (
	"context"
	"log"

	"bookmark-service/cmd/api/app"
	"bookmark-service/cmd/api/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}

func run() error {
	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	a, err := app.New()
	if err != nil {
		return err
	}

	return a.Run(ctx)
}
