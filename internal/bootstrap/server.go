package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
	"github.com/courtdata/judicial-sync/internal/config"
	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/feed"
	"github.com/courtdata/judicial-sync/internal/infrastructure/repository"
	httpecho "github.com/courtdata/judicial-sync/internal/interfaces/http/echo"
)

const peopleAPIName = "judicial-people"

// NewHTTPServer wires the ingestion pipeline and its HTTP surface.
func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) (*echo.Echo, error) {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("1M"))

	changedSince, err := cfg.Feed.DefaultChangedSince()
	if err != nil {
		return nil, err
	}

	feedClient := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.RequestTimeout)
	fetcher := app.NewPageFetcher(feedClient, app.PageFetcherConfig{
		PageSize:        cfg.Feed.PageSize,
		IncludeInactive: cfg.Feed.IncludeInactive,
		Pause:           cfg.Feed.PauseTime,
		RetriggerPause:  cfg.Feed.RetriggerPauseTime,
		MaxRetries:      cfg.Feed.MaxRetries,
	}, log)

	recorder := app.NewExceptionRecorder(
		repository.NewExceptionRepository(pool), cfg.Feed.SchedulerName, log)
	resolver := app.NewReferenceResolver(
		repository.NewLocationLookupRepository(db), log)

	reconciler := app.NewReconciler(
		repository.NewProfileRepository(db),
		repository.NewAppointmentRepository(db),
		repository.NewAuthorisationRepository(db),
		repository.NewRoleRepository(db),
		resolver,
		recorder,
		domain.NewRoleNameSet(cfg.Feed.RoleNames),
		log,
	)

	syncPeople := app.NewSyncPeople(fetcher, reconciler,
		repository.NewRunAuditRepository(db),
		app.SyncPeopleConfig{
			SchedulerName:       cfg.Feed.SchedulerName,
			APIName:             peopleAPIName,
			DefaultChangedSince: changedSince,
		}, log)

	getPerson := app.NewGetPersonByCode(repository.NewPersonQueryRepository(db))

	ingestionHandler := httpecho.NewIngestionHandler(syncPeople)
	personHandler := httpecho.NewPersonHandler(getPerson)
	httpecho.RegisterRoutes(server, ingestionHandler, personHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server, nil
}
