package main

import (
	"context"
	"log/slog"
	"os"

	"mandoob/config"
	"mandoob/internal/delivery"
	"mandoob/internal/delivery/api"
	"mandoob/internal/delivery/api/middleware"
	"mandoob/internal/delivery/api/router/handler"
	"mandoob/internal/domain/combination"
	"mandoob/internal/domain/extraction"
	"mandoob/internal/domain/service"
	"mandoob/internal/infra/auth"
	"mandoob/internal/infra/geocode"
	"mandoob/internal/infra/lock"
	logs "mandoob/internal/infra/log"
	"mandoob/internal/infra/persistence/postgres"
	"mandoob/internal/infra/pubsub"
	"mandoob/internal/infra/qrcode"
	"mandoob/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		lock.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeliveryAppRepository,
			postgres.NewNotificationRepository,
			postgres.NewOrderRepository,
			postgres.NewCombinationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocode.NewSimulatedGeocoder,
			newQRCodeService,
		),
	)
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			newExtractor,
			newCombinationGenerator,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newExtractor layers configured cue tables over the built-in ones.
func newExtractor(cfg *config.Config, geocoder service.Geocoder) *extraction.Extractor {
	tables := extraction.DefaultCueTables()

	if cfg.Extraction != nil {
		apps := make(map[string]extraction.CueTable, len(cfg.Extraction.Apps))
		for name, table := range cfg.Extraction.Apps {
			apps[name] = toCueTable(table)
		}

		var fallback *extraction.CueTable
		if cfg.Extraction.Default != nil {
			table := toCueTable(*cfg.Extraction.Default)
			fallback = &table
		}

		tables = tables.Merge(apps, fallback)
	}

	return extraction.NewExtractor(tables, geocoder)
}

func toCueTable(table config.CueTableConfig) extraction.CueTable {
	return extraction.CueTable{
		Pickup:  table.Pickup,
		Dropoff: table.Dropoff,
		Amount:  table.Amount,
	}
}

// newCombinationGenerator overrides the default rules with any positive configured value.
func newCombinationGenerator(cfg *config.Config) *combination.Generator {
	rules := combination.DefaultRules()

	if cfg.Combination != nil {
		if cfg.Combination.MaxPickupGapKm > 0 {
			rules.MaxPickupGapKm = cfg.Combination.MaxPickupGapKm
		}
		if cfg.Combination.MaxDropoffGapKm > 0 {
			rules.MaxDropoffGapKm = cfg.Combination.MaxDropoffGapKm
		}
		if cfg.Combination.MinutesPerKm > 0 {
			rules.MinutesPerKm = cfg.Combination.MinutesPerKm
		}
	}

	return combination.NewGenerator(rules)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeliveryAppService,
			impl.NewNotificationService,
			impl.NewOrderService,
			impl.NewCombinationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStatusHandler,
			handler.NewDeliveryAppHandler,
			handler.NewNotificationHandler,
			handler.NewOrderHandler,
			handler.NewCombinationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
