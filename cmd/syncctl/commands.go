package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/config"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	changeLogRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/repository"
	changeLogUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	jobRepoPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/job/repository"
	jobUCPkg "github.com/H4tholdir/archibaldblackant-sub008/internal/job/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/schema"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/cache"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// operator is the identity syncctl acts as for admin-only operations.
var operator = auth.Principal{UserID: "syncctl", Role: auth.RoleAdmin}

type RootOptions struct {
	Timeout time.Duration
	JSON    bool
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "syncctl",
		Short: "Operate the sync service database",
		Long: `Operator tasks for the sync service. Connection settings come from the
same environment variables (or .env file) the gRPC server reads.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", time.Minute, "overall deadline for the command")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print results as JSON")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSweepCommand(opts))
	cmd.AddCommand(newReleaseLockCommand(opts))
	cmd.AddCommand(newRetryJobCommand(opts))
	return cmd
}

// env holds the connections one command opened.
type env struct {
	cfg     *config.Config
	log     logger.ZapLogger
	db      *sqlx.DB
	redis   *cache.RedisClient
	closers []func() error
}

func openEnv(withRedis bool) (*env, error) {
	cfg := config.LoadEnv()
	e := &env{
		cfg: cfg,
		log: logger.NewZapLogger(&logger.ZapLoggerConfig{
			IsDevelopment:     true,
			Encoding:          "console",
			Level:             cfg.Logger.Level,
			DisableStacktrace: true,
		}),
	}

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	e.db = db
	e.closers = append(e.closers, db.Close)

	if withRedis {
		rc, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: 2,
		})
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("connect redis: %w", err), e.Close())
		}
		e.redis = rc
		e.closers = append(e.closers, rc.Close)
	}
	return e, nil
}

func (e *env) Close() error {
	var err error
	for i := len(e.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, e.closers[i]())
	}
	_ = e.log.Sync()
	return err
}

// jobs builds the job usecase. Only release-lock opens Redis; the other
// commands never touch agent locks.
func (e *env) jobs() job.UseCase {
	var locker agentlock.Locker = agentlock.NewMemoryLocker(nil)
	if e.redis != nil {
		locker = agentlock.NewRedisLocker(e.redis.Client)
	}
	return jobUCPkg.NewJobUseCase(jobRepoPkg.NewPGRepository(e.db), locker, notify.NewNop(), jobUCPkg.Options{
		ExclusiveTypes: e.cfg.Jobs.ExclusiveTypes,
		LockTTL:        e.cfg.Jobs.LockTTL,
	}, e.log)
}

// run opens the environment, runs fn under the command deadline and closes
// everything, reporting close errors alongside fn's.
func run(opts *RootOptions, withRedis bool, fn func(ctx context.Context, e *env) error) (err error) {
	e, err := openEnv(withRedis)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, e.Close()) }()

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	return fn(ctx, e)
}

func report(w io.Writer, opts *RootOptions, v interface{}, text string) error {
	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, false, func(ctx context.Context, e *env) error {
				applied, err := postgres.Migrate(ctx, e.db, schema.Migrations())
				if err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), opts, map[string]interface{}{"applied": applied},
					fmt.Sprintf("applied %d migration(s) %v", len(applied), applied))
			})
		},
	}
}

func newSweepCommand(opts *RootOptions) *cobra.Command {
	var retention time.Duration

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Purge change log entries and idempotency keys past retention",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, false, func(ctx context.Context, e *env) error {
				if retention <= 0 {
					retention = e.cfg.Sync.Retention
				}
				uc := changeLogUCPkg.NewChangeLogUseCase(changeLogRepoPkg.NewPGRepository(e.db), changeLogUCPkg.Options{
					Retention: retention,
				}, e.log)
				res, err := uc.Sweep(ctx)
				if err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), opts, res,
					fmt.Sprintf("purged %d entries and %d idempotency keys", res.Entries, res.IdempotencyKeys))
			})
		},
	}
	cmd.Flags().DurationVar(&retention, "retention", 0, "override the configured retention window")
	return cmd
}

func newReleaseLockCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "release-lock <userId>",
		Short: "Free an agent's automation session, failing the job holding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, true, func(ctx context.Context, e *env) error {
				if err := e.jobs().ReleaseAgentLock(ctx, operator, args[0]); err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), opts, map[string]interface{}{"success": true, "userId": args[0]},
					"released agent lock of "+args[0])
			})
		},
	}
}

func newRetryJobCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retry-job <jobId>",
		Short: "Put a failed job back in the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, false, func(ctx context.Context, e *env) error {
				if err := e.jobs().Retry(ctx, operator, args[0]); err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), opts, map[string]interface{}{"success": true, "jobId": args[0]},
					"job "+args[0]+" is waiting again")
			})
		},
	}
}
