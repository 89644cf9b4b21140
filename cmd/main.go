package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tradebot/internal/api/http"
	"tradebot/internal/controllers"
	mongoRepo "tradebot/internal/repository/mongo"
	"tradebot/internal/repository/postgres"
	"tradebot/internal/usecasees"

	"github.com/gofiber/fiber/v2"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initLoki(); err != nil {
		panic(err)
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if err := app.initDB(app.Config.DB); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.initMetrics()

	chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	tokenController := controllers.NewTokenController(
		app.Config.BrokerAccessToken,
		time.Duration(app.Config.BrokerTokenTTLSec)*time.Second,
		app.Logger,
	)
	clientController := controllers.NewClientController(
		app.HTTPClient,
		tokenController,
		app.Logger,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		chatID,
	)

	historyRepo := postgres.NewHistoryRepository(app.DB)

	dbName := app.Config.Mongo.DBName

	queueRepo := mongoRepo.NewQueueRepository(app.Mongo, dbName)
	openRepo := mongoRepo.NewOpenPositionsRepository(app.Mongo, dbName)
	closedRepo := mongoRepo.NewClosedPositionsRepository(app.Mongo, dbName)
	rejectedRepo := mongoRepo.NewAuditRepository(app.Mongo, dbName, mongoRepo.CollectionRejected)
	canceledRepo := mongoRepo.NewAuditRepository(app.Mongo, dbName, mongoRepo.CollectionCanceled)
	strategiesRepo := mongoRepo.NewStrategiesRepository(app.Mongo, dbName)
	forbiddenRepo := mongoRepo.NewForbiddenRepository(app.Mongo, dbName)
	usersRepo := mongoRepo.NewUsersRepository(app.Mongo, dbName)

	var receivers []http.SignalReceiver
	var stops []func()

	for _, account := range app.Config.Accounts {
		brokerController := controllers.NewBrokerController(
			clientController,
			tokenController,
			app.Config.BrokerUrl,
			account.Hash,
			app.Logger,
		)

		builder := usecasees.NewOrderBuilder(
			brokerController,
			app.Config.TraderName,
			account.ID,
			app.Config.TakeProfitPct,
			app.Config.StopLossPct,
			app.Logger,
		)

		orderUseCase := usecasees.NewOrderUseCase(
			brokerController,
			tgmController,
			builder,
			queueRepo,
			openRepo,
			closedRepo,
			rejectedRepo,
			canceledRepo,
			strategiesRepo,
			forbiddenRepo,
			usersRepo,
			app.Config.TraderName,
			account.ID,
			account.Mode == usecasees.MODE_LIVE,
			app.Metrics.Order,
			app.Logger,
		)

		tasksUseCase, err := usecasees.NewTasksUseCase(
			orderUseCase,
			historyRepo,
			app.Logger,
		)
		if err != nil {
			panic(err)
		}

		if err := tasksUseCase.Run(); err != nil {
			panic(err)
		}

		receivers = append(receivers, tasksUseCase)
		stops = append(stops, tasksUseCase.Stop)
	}

	app.Fiber = fiber.New()

	http.RegisterHTTPEndpoints(
		app.Fiber,
		appName,
		app.Config.WebhookToken,
		receivers,
		app.Logger,
	)

	go func() {
		if err := app.Fiber.Listen(app.Config.HTTPAddr); err != nil {
			app.Logger.
				WithError(err).
				Error("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	for _, stop := range stops {
		stop()
	}

	if err := app.Fiber.Shutdown(); err != nil {
		app.Logger.
			WithError(err).
			Error("http server shutdown")
	}
}
