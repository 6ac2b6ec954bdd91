// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Command insightd serves the section and room datasets behind the query
// endpoints: GET /sections and GET /rooms, each taking a JSON query in the q
// parameter.
package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/hashicorp/insight"
	"github.com/hashicorp/insight/ingest"
	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type cliOptions struct {
	Config  string `short:"c" long:"config" description:"path to a YAML config file"`
	Port    int    `short:"p" long:"port" description:"port to listen on (overrides the config file)"`
	Console bool   `long:"console" description:"run the console query loop alongside the server"`
}

func main() {
	var cli cliOptions
	if _, err := flags.Parse(&cli); err != nil {
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		sugar.Fatalf("failed to load config: %v", err)
	}
	if cli.Port != 0 {
		cfg.Port = cli.Port
	}

	// datasets load on first access and are immutable afterwards
	sections := sync.OnceValues(func() ([]insight.Section, error) {
		return ingest.LoadSections(cfg.SectionsZip, ingest.WithLogger(sugar))
	})
	rooms := sync.OnceValues(func() ([]insight.Room, error) {
		return ingest.LoadRooms(cfg.RoomsZip, ingest.WithLogger(sugar))
	})

	srv := newServer(sections, rooms, sugar)
	if cli.Console {
		go consoleLoop(cfg.QueryFile, sections, rooms)
	}

	sugar.Infow("starting server", "port", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), srv.routes()); err != nil {
		sugar.Fatalf("server error: %v", err)
	}
}
