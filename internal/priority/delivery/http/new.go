package http

import (
	"univio/internal/priority"
	"univio/pkg/log"
)

type handler struct {
	l  log.Logger
	uc priority.UseCase
}

// New creates a new HTTP handler for the priority domain.
func New(l log.Logger, uc priority.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
