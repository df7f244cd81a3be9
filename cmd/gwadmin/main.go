package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/config"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/internal/service"
	"github.com/gomsggw/gwadmin/internal/shell"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewSessionLogger("gwadmin")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	prompter := shell.NewTermPrompter(os.Stdin, os.Stdout)

	if cfg.Gateway.NeedsAPIKey() {
		fmt.Println("No MSGGW_API_KEY in environment. Enter it now.")
		key, err := prompter.Secret("API key: ")
		if err != nil || key == "" {
			fmt.Fprintln(os.Stderr, "An API key is required.")
			os.Exit(1)
		}
		cfg.Gateway.APIKey = key
	}

	gateway, err := adapter.NewHTTPGatewayAdapter(cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway adapter")
	}

	services := service.NewServices(gateway, log)
	sh := shell.New(services, prompter, os.Stdout, cfg.Gateway.BaseURL, log)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Println("\nInterrupted. Bye!")
		os.Exit(0)
	}()

	if err := sh.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("session error")
	}
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
