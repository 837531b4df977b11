package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	ichingcmd "github.com/qrzn23/iching/internal/cmd/iching"
	"github.com/qrzn23/iching/internal/platform/config"
)

func main() {
	cfg, err := ichingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ichingcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.ExitErr("iching", err)
	}
}
