package usecase

import (
	"github.com/m-mizutani/rrs/pkg/domain/interfaces"
	"github.com/m-mizutani/rrs/pkg/infra"
	"golang.org/x/sync/semaphore"
)

type UseCase struct {
	clients *infra.Clients

	// buildSem lets one report build run at a time across concurrent HTTP requests
	buildSem *semaphore.Weighted
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients:  clients,
		buildSem: semaphore.NewWeighted(1),
	}
}
