package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doitintl/hello/agent-data-api/cmd/api"
	"github.com/doitintl/hello/agent-data-api/logger"
)

const (
	defaultAddr     = "0.0.0.0:8082"
	shutdownTimeout = 10 * time.Second
)

func main() {
	Execute()
}

func serve(service, addr string) error {
	// Initialize basic context
	ctx := context.Background()

	logging, err := logger.NewLogging(ctx, service)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}
	defer logging.Close()

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a, err := api.NewAPI(ctx, shutdown, logging, service)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := a.Build(ctx)
	if err != nil {
		return err
	}

	server := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Buffered so the goroutine can exit if the error is never collected.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("%s listening on %s", service, addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(ctx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}

// resolveAddr prefers an explicit --addr, then PORT.
func resolveAddr(flag string) string {
	if flag != "" {
		return flag
	}

	if port := os.Getenv("PORT"); port != "" {
		return fmt.Sprintf(":%s", port)
	}

	return defaultAddr
}
