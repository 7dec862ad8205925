package app

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/repository/rediscache"
	"github.com/fsdevblog/groph-market/internal/service/psswd"
	"github.com/fsdevblog/groph-market/internal/transport/pricing"

	"github.com/fsdevblog/groph-market/pkg/uow"

	"github.com/fsdevblog/groph-market/internal/config"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return errors.Wrap(connErr, "app run")
	}
	defer conn.Close()

	redisClient, redisErr := rediscache.Connect(notifyCtx, a.Config.RedisURL)
	if redisErr != nil {
		return errors.Wrap(redisErr, "app run")
	}
	defer func() {
		_ = redisClient.Close()
	}()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return errors.Wrap(uowErr, "app run")
	}

	priceClient := pricing.NewHTTPClient(a.Config.PricingAPIURL, a.Config.PricingAppID, a.Config.PricingCurrency)

	services, sErr := service.Factory(service.FactoryArgs{
		UnitOfWork:  unitOfWork,
		JWTSecret:   []byte(a.Config.JWTUserSecret),
		Psswd:       psswd.PasswordHash(""),
		PriceClient: priceClient,
		ItemsCache:  rediscache.NewItemsCache(redisClient),
	})

	if sErr != nil {
		return errors.Wrap(sErr, "app run")
	}

	router := api.New(api.RouterArgs{
		Logger:       a.Logger,
		AuthService:  services.UserService,
		ItemService:  services.ItemService,
		JWTSecretKey: []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Config.PriceRefreshInterval > 0 {
		refresher := pricing.NewRefresher(services.ItemService, a.Logger).
			SetInterval(a.Config.PriceRefreshInterval)
		go refresher.Run(notifyCtx)
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(domain.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	// purchase repo
	purchaseRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewPurchaseRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(domain.PurchaseRepoName), purchaseRepoFactoryFn); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	return unitOfWork, nil
}
