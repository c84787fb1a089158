package main

import (
	"os"

	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
	logsvc "github.com/trezcool/ccdbms/services/logger"
	inmemdb "github.com/trezcool/ccdbms/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(logsvc.NewConsoleLogger(os.Stderr, conf), conf)

	// start CLI
	cli := commandLine{
		store: college.NewService(inmemdb.Open()),
		out:   os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
