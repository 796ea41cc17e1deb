/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// ingestctl runs one ingestion pass for an arrival object, the same path the
// storage-event trigger takes in production.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/suparena/moviecatalog"
	"github.com/suparena/moviecatalog/config"
	"github.com/suparena/moviecatalog/ingest"
	"github.com/suparena/moviecatalog/logging"
)

var (
	bucketFlag  = flag.String("bucket", "", "Bucket holding the arrival object")
	keyFlag     = flag.String("key", "", "Key of the arrival object")
	versionFlag = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *versionFlag {
		info := moviecatalog.GetVersionInfo()
		fmt.Printf("moviecatalog ingestctl version %s\n", info.Version)
		os.Exit(0)
	}

	if *bucketFlag == "" || *keyFlag == "" {
		fmt.Fprintln(os.Stderr, "ingestctl: -bucket and -key are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ingestctl: %v\n", err)
		os.Exit(1)
	}

	log := logging.NewConsole(cfg.LogLevel, os.Stderr)

	ctx := context.Background()
	sys, err := moviecatalog.NewSystem(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	ev := ingest.Event{Bucket: *bucketFlag, Key: *keyFlag}
	if err := sys.Extractor.HandleObject(ctx, ev); err != nil {
		log.Fatal().Err(err).Str("bucket", ev.Bucket).Str("key", ev.Key).Msg("ingestion failed")
	}
}
