package main

import (
	"fmt"

	"github.com/MKhiriev/go-book-reviews/internal/adapter"
	"github.com/MKhiriev/go-book-reviews/internal/config"
	handlerhttp "github.com/MKhiriev/go-book-reviews/internal/handler/http"
	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/server"
	"github.com/MKhiriev/go-book-reviews/internal/service"
	"github.com/MKhiriev/go-book-reviews/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("book-review-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages := store.NewStorages(log)
	services := service.NewServices(storages, cfg, log)
	external := adapter.NewPostsClient(adapter.PostsClientConfig{
		BaseURL: cfg.External.BaseURL,
		Timeout: cfg.External.Timeout,
	})

	handler := handlerhttp.NewHandler(services, external, cfg.App.SearchDelay, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
