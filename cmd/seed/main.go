package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/repository"
	"github.com/noah-isme/admissions-crm-api/pkg/config"
	"github.com/noah-isme/admissions-crm-api/pkg/database"
	"github.com/noah-isme/admissions-crm-api/pkg/logger"
)

func main() {
	var (
		count      int
		seed       uint64
		reset      bool
		configOnly bool
		timeout    time.Duration
	)
	flag.IntVar(&count, "students", 50, "Number of students to generate")
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed for generated data")
	flag.BoolVar(&reset, "reset", true, "Clear students and their satellites first")
	flag.BoolVar(&configOnly, "config-only", false, "Only write the global config and static users")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := database.NewMongo(ctx, cfg.Mongo, nil)
	if err != nil {
		logr.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck
	db := client.Database(cfg.Mongo.Database)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logr.Fatal("failed to create indexes", zap.Error(err))
	}

	now := time.Now()
	if err := repository.NewConfigurationRepository(db).Put(ctx, defaultGlobalConfig(now)); err != nil {
		logr.Fatal("failed to write global config", zap.Error(err))
	}
	logr.Info("global config written", zap.String("id", models.GlobalConfigID))

	users := repository.NewUserRepository(db)
	for _, u := range defaultUsers(now) {
		u := u
		if err := users.Create(ctx, &u); err != nil && !errors.Is(err, repository.ErrDuplicate) {
			logr.Fatal("failed to write user", zap.String("user_id", u.ID), zap.Error(err))
		}
	}
	if configOnly {
		logr.Info("config-only run complete")
		return
	}

	if reset {
		if err := repository.ResetCollections(ctx, db); err != nil {
			logr.Fatal("failed to clear collections", zap.Error(err))
		}
		logr.Info("collections cleared")
	}

	staff, err := users.List(ctx)
	if err != nil {
		logr.Fatal("failed to list users", zap.Error(err))
	}
	staffIDs := make([]string, 0, len(staff))
	for _, u := range staff {
		staffIDs = append(staffIDs, u.ID)
	}

	ds := newGenerator(seed, now, staffIDs).generate(count)
	if err := write(ctx, db, ds); err != nil {
		logr.Fatal("failed to write seed data", zap.Error(err))
	}
	logr.Info("seed complete",
		zap.Uint64("seed", seed),
		zap.Int("students", len(ds.Students)),
		zap.Int("tasks", len(ds.Tasks)),
		zap.Int("notes", len(ds.Notes)),
		zap.Int("communications", len(ds.Communications)),
		zap.Int("interactions", len(ds.Interactions)),
	)
}

func write(ctx context.Context, db *mongo.Database, ds dataset) error {
	if err := repository.NewStudentRepository(db).InsertMany(ctx, ds.Students); err != nil {
		return err
	}
	tasks := repository.NewTaskRepository(db)
	for i := range ds.Tasks {
		if err := tasks.Create(ctx, &ds.Tasks[i]); err != nil {
			return err
		}
	}
	notes := repository.NewNoteRepository(db)
	for i := range ds.Notes {
		if err := notes.Create(ctx, &ds.Notes[i]); err != nil {
			return err
		}
	}
	comms := repository.NewCommunicationRepository(db)
	for i := range ds.Communications {
		if err := comms.Create(ctx, &ds.Communications[i]); err != nil {
			return err
		}
	}
	interactions := repository.NewInteractionRepository(db)
	for i := range ds.Interactions {
		if err := interactions.Create(ctx, &ds.Interactions[i]); err != nil {
			return err
		}
	}
	return nil
}
