package main

import (
	"ngopi/config"
	"ngopi/internal/domain/repository"
	"ngopi/internal/infra/connectivity"
	logs "ngopi/internal/infra/log"
	"ngopi/internal/infra/persistence/sheets"
	"ngopi/internal/infra/ratelimit"

	"github.com/pkg/errors"
)

// newCafeStore wires the Sheets-backed cafe repository without Fx. The CLI
// runs attended, so the connectivity probe is pinned online and the caller
// owns pacing against the shared request window.
func newCafeStore(cfg *config.Config) (repository.CafeRepository, error) {
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	client, err := sheets.New(sheets.Params{
		Config:  cfg,
		Logger:  logger,
		Limiter: ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		Probe:   connectivity.NewStaticProbe(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheets client")
	}

	return sheets.NewCafeRepository(client), nil
}
