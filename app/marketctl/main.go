package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
)

func main() {
	defer log.Sync()

	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", domain.UserMessage(err))
		os.Exit(1)
	}
}
