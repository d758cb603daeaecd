package api

import (
	"github.com/rs/zerolog"

	"github.com/birdcall/birdcall/internal/core/entities/release"
)

type API struct {
	release release.Info
	logger  *zerolog.Logger
}

func New(
	info release.Info,
	logger *zerolog.Logger,
) *API {
	return &API{
		release: info,
		logger:  logger,
	}
}
