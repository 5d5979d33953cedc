package usecase

import (
	"univio/internal/priority"
	"univio/pkg/datemath"
	pkgLog "univio/pkg/log"
)

// implUseCase is the private implementation of priority.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	clock     datemath.Clock
	rankLimit int
}

var _ priority.UseCase = (*implUseCase)(nil)

// New creates a new priority UseCase. rankLimit <= 0 falls back to 5.
func New(l pkgLog.Logger, clock datemath.Clock, rankLimit int) *implUseCase {
	if rankLimit <= 0 {
		rankLimit = defaultRankLimit
	}
	return &implUseCase{
		l:         l,
		clock:     clock,
		rankLimit: rankLimit,
	}
}
