package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/H4tholdir/archibaldblackant-sub008/config"
	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/schema"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/broker"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/cache"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/i18n"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/search"

	syncH "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/handler"
	changeLogRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/repository"
	sweeperPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/sweeper"
	changeLogUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/usecase"

	jobH "github.com/H4tholdir/archibaldblackant-sub008/internal/job/handler"
	jobListenerPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/job/listener"
	jobRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/job/repository"
	jobUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/job/usecase"

	orderH "github.com/H4tholdir/archibaldblackant-sub008/internal/order/handler"
	orderDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
	orderRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/order/repository"
	orderUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/order/usecase"

	whH "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/handler"
	whRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/repository"
	whUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	if dir := cfg.Server.LocalesDir; dir != "" {
		for _, name := range []string{"active.en.json", "active.it.json"} {
			if err := i18n.Load(filepath.Join(dir, name)); err != nil {
				log.Printf("Failed to load locale %s: %v", name, err)
			}
		}
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 3.5 Apply migrations before any repository touches the schema
	applied, err := postgres.Migrate(context.Background(), db, schema.Migrations())
	if err != nil {
		appLogger.Fatal("Could not migrate database", zap.Error(err))
	}
	appLogger.Info("Database schema up to date", zap.Strings("applied", applied))

	// 4. Initialize Repositories
	changeLogRepo := changeLogRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	whRepo := whRepoPkg.NewPGRepository(db)
	jobRepo := jobRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.NotifyTopic,
	})
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.WorkerEventsTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	appLogger.Info("Connected to Kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("notify_topic", cfg.Kafka.NotifyTopic),
		zap.String("worker_events_topic", cfg.Kafka.WorkerEventsTopic),
	)

	defer func() {
		err := multierr.Combine(
			kafkaConsumer.Close(),
			kafkaProducer.Close(),
			redisClient.Close(),
			db.Close(),
		)
		if err != nil {
			appLogger.Error("Errors while closing resources", zap.Error(err))
		}
	}()

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch, item search falls back to Postgres", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	notifier := notify.NewKafkaPublisher(kafkaProducer, appLogger)
	locker := agentlock.NewRedisLocker(redisClient.Client)

	changeLogUC := changeLogUCPkg.NewChangeLogUseCase(changeLogRepo, changeLogUCPkg.Options{
		PageSize:  cfg.Sync.PageSize,
		Retention: cfg.Sync.Retention,
	}, appLogger)
	jobUC := jobUCPkg.NewJobUseCase(jobRepo, locker, notifier, jobUCPkg.Options{
		ExclusiveTypes: cfg.Jobs.ExclusiveTypes,
		LockTTL:        cfg.Jobs.LockTTL,
	}, appLogger)
	whUC := whUCPkg.NewWarehouseUseCase(whRepo, orderRepo, redisClient, esClient, notifier, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, jobUC, whUC, notifier, appLogger)
	jobUC.RegisterHook(orderDTO.SubmitJobType, orderUC)

	// 6.5 Initialize background loops
	sweeper := sweeperPkg.NewSweeper(changeLogUC, redisClient, cfg.Sync.SweepInterval, appLogger)
	workerListener := jobListenerPkg.NewWorkerListener(kafkaConsumer, jobUC, appLogger)

	// 7. Initialize Handlers and gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	// Register Services
	pb.RegisterSyncServiceServer(grpcServer, syncH.NewSyncHandler(changeLogUC, orderUC, appLogger))
	pb.RegisterWarehouseServiceServer(grpcServer, whH.NewWarehouseHandler(whUC, appLogger))
	pb.RegisterJobServiceServer(grpcServer, jobH.NewJobHandler(jobUC, appLogger))
	pb.RegisterOrderServiceServer(grpcServer, orderH.NewOrderHandler(orderUC, appLogger))

	// Register Reflection
	reflection.Register(grpcServer)

	// 8. Run until SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sweeper.Start(gctx)
	})
	g.Go(func() error {
		workerListener.Start(gctx)
		return nil
	})
	g.Go(func() error {
		appLogger.Info("Starting gRPC server", zap.String("port", port))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server stopped")
}
