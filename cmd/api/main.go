package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharma-sfe-api/infrastructure/repository"
	"github.com/vfg2006/pharma-sfe-api/internal/api"
	"github.com/vfg2006/pharma-sfe-api/internal/config"
	"github.com/vfg2006/pharma-sfe-api/internal/scheduler"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/authenticating"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/planning"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/reference"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/selling"
	"github.com/vfg2006/pharma-sfe-api/internal/usecases/visiting"
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
	doctorRepo := repository.NewDoctorRepository(pgConn)
	brickRepo := repository.NewBrickRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	visitPlanRepo := repository.NewVisitPlanRepository(pgConn)
	visitRepo := repository.NewVisitRepository(pgConn)
	salesPlanRepo := repository.NewSalesPlanRepository(pgConn)
	salesRepo := repository.NewSalesRepository(pgConn)
	actionPlanRepo := repository.NewActionPlanRepository(pgConn)
	snapshotRepo := repository.NewComplianceSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	complianceService := visiting.NewService(visitPlanRepo, visitRepo, doctorRepo)
	performanceService := selling.NewService(salesPlanRepo, salesRepo, productRepo, brickRepo)
	planService := planning.NewService(actionPlanRepo)
	referenceService := reference.NewService(doctorRepo, brickRepo, productRepo)

	// Inicializa o agendador de fotografias mensais de compliance
	complianceSnapshotSyncService := scheduler.NewComplianceSnapshotSyncService(
		userRepo,
		snapshotRepo,
		complianceService,
		cfg,
	)

	// Inicia o agendador em background
	if err := complianceSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias de compliance")
	} else {
		logrus.Info("Agendador de fotografias de compliance iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		complianceService,
		performanceService,
		planService,
		referenceService,
		complianceSnapshotSyncService,
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
