package app

import (
	"go.uber.org/dig"

	"shiphub/internal/config"
	"shiphub/internal/logx"
	"shiphub/internal/repository"
	"shiphub/internal/service/company"
	"shiphub/internal/service/shipping"
	"shiphub/internal/service/tracking"
	"shiphub/internal/transport/kafka"
)

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewRequestRepo,
		repository.NewCompanyRepo,
		func(repo *repository.CompanyRepo, cfg *config.Config, logger logx.Logger) *company.Service {
			return company.NewService(repo, cfg.OperationTimeout, logger)
		},
		newShippingService,
		func(svc *shipping.Service, m *appMetrics, logger logx.Logger) *tracking.Processor {
			return tracking.NewProcessor(svc, m.deliveryEvents, logger)
		},
	)
}

type shippingIn struct {
	dig.In

	Requests  *repository.RequestRepo
	Companies *repository.CompanyRepo
	Events    *kafka.RetryingPublisher
	Metrics   *appMetrics
	Config    *config.Config
	Logger    logx.Logger
}

func newShippingService(in shippingIn) *shipping.Service {
	return shipping.NewService(
		in.Requests,
		in.Companies,
		in.Events,
		in.Metrics.transitions,
		in.Config.OperationTimeout,
		in.Logger,
	)
}
