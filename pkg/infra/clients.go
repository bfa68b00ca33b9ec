package infra

import (
	"github.com/m-mizutani/rrs/pkg/domain/interfaces"
)

type Clients struct {
	github           interfaces.GitHub
	reportRepository interfaces.ReportRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) ReportRepository() interfaces.ReportRepository {
	return x.reportRepository
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithReportRepository(repo interfaces.ReportRepository) Option {
	return func(x *Clients) {
		x.reportRepository = repo
	}
}
