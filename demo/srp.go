package demo

import (
	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/srp"
)

// RunSRP builds the configured sink and sends one info, one warning and one error record through it.
func RunSRP(cfg SRPConfig, l logger.Logger) error {
	kind, err := srp.ParseSinkKind(cfg.Sink)
	if err != nil {
		return errx.Wrap(err)
	}

	sink, err := srp.NewSink(kind, cfg.Sinks, l)
	if err != nil {
		return errx.Wrap(err)
	}

	svc, err := srp.NewLoggingService(sink)
	if err != nil {
		return errx.Wrap(err)
	}

	svc.LogInfo("Info log")
	svc.LogWarning("Log warning")
	svc.LogError("Log error", errx.New("some exception message"))

	return nil
}
