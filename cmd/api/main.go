package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce"
	"github.com/vfg2006/profit-tracker-api/infrastructure/integrator/woocommerce/wooclient"
	"github.com/vfg2006/profit-tracker-api/infrastructure/repository"
	"github.com/vfg2006/profit-tracker-api/internal/api"
	"github.com/vfg2006/profit-tracker-api/internal/config"
	"github.com/vfg2006/profit-tracker-api/internal/scheduler"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/advertising"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/store"
	"github.com/vfg2006/profit-tracker-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	syncHistoryRepo := repository.NewSyncHistoryRepository(pgConn)
	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	adSpendRepo := repository.NewAdSpendRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	wooClient := wooclient.NewClient()
	wooIntegrator := woocommerce.New(wooClient)

	storeService := store.NewService(storeRepo, wooIntegrator)
	syncService := syncing.NewService(storeRepo, orderRepo, syncHistoryRepo, wooIntegrator, cfg)
	advertisingService := advertising.NewService(adAccountRepo, adSpendRepo, storeRepo)
	reportingService := reporting.NewService(orderRepo, adSpendRepo, storeRepo)

	// Inicializa o agendador de sincronização automática das lojas
	autoSyncService := scheduler.NewAutoSyncService(storeRepo, syncService, cfg)

	if err := autoSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização automática de lojas")
	} else {
		logrus.Info("Agendador de sincronização automática de lojas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		storeService,
		syncService,
		advertisingService,
		reportingService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
