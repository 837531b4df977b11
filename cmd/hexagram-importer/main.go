package main

import (
	"context"
	"flag"
	"os"

	entrypoint "github.com/qrzn23/iching/internal/platform/cmd"
	"github.com/qrzn23/iching/internal/platform/config"
	hexagramimporter "github.com/qrzn23/iching/internal/tools/importer/hexagram"
)

func main() {
	cfg, err := hexagramimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = entrypoint.Run(context.Background(), entrypoint.ServiceImporter, func(ctx context.Context) error {
		return hexagramimporter.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.ExitErr("Error", err)
	}
}
