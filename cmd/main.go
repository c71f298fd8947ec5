package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/checkout-addons/docs"
	"github.com/SergeyBogomolovv/checkout-addons/internal/app"
	"github.com/SergeyBogomolovv/checkout-addons/internal/config"
	"github.com/SergeyBogomolovv/checkout-addons/internal/entities"
	"github.com/SergeyBogomolovv/checkout-addons/internal/handler"
	"github.com/SergeyBogomolovv/checkout-addons/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-addons/internal/repo"
	"github.com/SergeyBogomolovv/checkout-addons/internal/service"
	"github.com/SergeyBogomolovv/checkout-addons/internal/trace"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/cache"
	"github.com/SergeyBogomolovv/checkout-addons/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Checkout Add-ons API
// @version         1.0
// @description     Вложения писем и доставка Zásilkovna для магазина
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)

	if conf.Tracing.Enabled {
		tp, err := trace.Init(ctx, conf.Tracing.ServiceName)
		panicIfErr("failed to init tracing", err)
		application.SetClosers(tp.Shutdown)
	}

	db, err := postgres.New(ctx, logger, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Migrations.Enabled {
		panicIfErr("failed to run migrations", postgres.Migrate(conf.Migrations.Path, conf.Postgres))
		logger.Info("migrations applied")
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	optionsCache := cache.NewLRUCache[[]byte](conf.Cache.Capacity, conf.Cache.TTL)

	settings := service.NewSettingsService(logger, pgRepo, optionsCache)
	attachments := service.NewAttachmentService(logger, settings, pgRepo, conf.Attachments.SkipUnresolved)

	handler.RegisterMetrics()
	application.SetStarters(optionsCache, app.StarterFunc(settings.WarmUp))
	application.SetHTTPHandlers(handler.NewAttachmentHandler(logger, attachments))

	// без лицензии доставка не подключается, как и в плагине
	licensed, err := settings.LicenceActive(ctx)
	panicIfErr("failed to read licence", err)

	if licensed {
		shipping := service.NewShippingService(logger, settings, txManager, pgRepo, pgRepo,
			service.WithAssetsURL(conf.Shipping.AssetsURL),
			service.WithRateFilters(logRates(logger)),
		)
		application.SetHTTPHandlers(handler.NewShippingHandler(logger, shipping))
		if conf.Kafka.Enabled {
			application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, shipping))
		}
	} else {
		logger.Warn("shipping licence is not active, shipping hooks disabled")
	}

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

func logRates(logger *slog.Logger) service.RateFilter {
	return func(ctx context.Context, rates, original []entities.Rate, pkg entities.Package) []entities.Rate {
		logger.DebugContext(ctx, "rates adjusted",
			slog.Int("before", len(original)),
			slog.Int("after", len(rates)),
			slog.String("country", pkg.DestinationCountry),
		)
		return rates
	}
}
