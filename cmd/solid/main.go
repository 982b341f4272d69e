package main

import (
	"os"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/cfgloader"
	"github.com/rise-and-shine/solid/demo"
	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/tracing"
)

func main() {
	cfg := cfgloader.MustLoad[demo.Config]()

	logger.SetGlobal(cfg.Logger)

	if err := run(cfg); err != nil {
		logger.Fatalx(err)
	}

	_ = logger.Sync()
}

func run(cfg demo.Config) error {
	shutdown, err := tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		return errx.Wrap(err)
	}
	defer func() {
		if shutdownErr := shutdown(); shutdownErr != nil {
			logger.Errorx(shutdownErr)
		}
	}()

	log := logger.Named("solid")

	if err = demo.RunOCP(cfg.OCP, os.Stdout, log); err != nil {
		return errx.Wrap(err)
	}

	if err = demo.RunSRP(cfg.SRP, log); err != nil {
		return errx.Wrap(err)
	}

	log.Info("demo finished")
	return nil
}
