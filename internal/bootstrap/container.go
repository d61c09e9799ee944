package bootstrap

import (
	"fmt"

	"islamic-quotes-be/internal/config"
	"islamic-quotes-be/internal/controller"
	"islamic-quotes-be/internal/pkg/logger"
	"islamic-quotes-be/internal/repository/memory"
	"islamic-quotes-be/internal/service"
	"islamic-quotes-be/internal/view"
	"islamic-quotes-be/pkg/dataset"

	"github.com/gofiber/fiber/v2"
)

type Container struct {
	// Controllers
	QuoteController  controller.IQuoteController
	PageController   controller.IPageController
	HealthController controller.IHealthController

	// Exposed for main.go and the CLI
	QuoteService    service.IQuoteService
	QuoteRepository *memory.QuoteRepository

	Logger       logger.ILogger
	AccessLogger logger.ILogger
	Views        fiber.Views
}

type Option func(*containerOptions)

type containerOptions struct {
	logger       logger.ILogger
	accessLogger logger.ILogger
	source       dataset.Source
	serviceOpts  []service.QuoteServiceOption
}

// WithLogger overrides both the application and the access logger.
func WithLogger(l logger.ILogger) Option {
	return func(o *containerOptions) {
		o.logger = l
		o.accessLogger = l
	}
}

// WithSource overrides the dataset source chosen from configuration.
func WithSource(src dataset.Source) Option {
	return func(o *containerOptions) {
		o.source = src
	}
}

func WithQuoteServiceOptions(opts ...service.QuoteServiceOption) Option {
	return func(o *containerOptions) {
		o.serviceOpts = append(o.serviceOpts, opts...)
	}
}

func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	o := &containerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	// 1. Logging
	if o.logger == nil {
		o.logger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}
	if o.accessLogger == nil {
		o.accessLogger = logger.NewIsolatedLogger(cfg.App.AccessLogFilePath)
	}

	// 2. Dataset
	if o.source == nil {
		src, err := NewDatasetSource(cfg.Dataset)
		if err != nil {
			return nil, err
		}
		o.source = src
	}
	loader := dataset.NewLoader(o.source, o.logger)
	quoteRepo := memory.NewQuoteRepository(loader)

	// 3. Services
	quoteService := service.NewQuoteService(quoteRepo, o.serviceOpts...)

	// 4. Views
	views, err := view.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("view.NewEngine > %w", err)
	}

	// 5. Controllers
	return &Container{
		QuoteController:  controller.NewQuoteController(quoteService),
		PageController:   controller.NewPageController(quoteService, cfg.App.BaseURL, cfg.App.ApiPrefix),
		HealthController: controller.NewHealthController(quoteService),

		QuoteService:    quoteService,
		QuoteRepository: quoteRepo,

		Logger:       o.logger,
		AccessLogger: o.accessLogger,
		Views:        views,
	}, nil
}

// NewDatasetSource picks the dataset location: an S3 object when a bucket is
// configured, a local file when a path is set, the bundled copy otherwise.
func NewDatasetSource(cfg config.DatasetConfig) (dataset.Source, error) {
	switch {
	case cfg.S3.Bucket != "":
		client, err := dataset.NewObjectClient(cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("dataset.NewObjectClient > %w", err)
		}
		return dataset.Object(client, cfg.S3.Bucket, cfg.S3.Object), nil
	case cfg.Path != "":
		return dataset.File(cfg.Path), nil
	default:
		return dataset.Embedded(), nil
	}
}
