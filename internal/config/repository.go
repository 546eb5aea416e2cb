package config

import (
	"context"
	"fmt"
	"os"

	"studyflow/internal/repository"
	"studyflow/internal/repository/mongo"
	"studyflow/internal/repository/sqlite"
)

// CreateStore creates the document store selected by the configuration
func CreateStore(ctx context.Context, config *Config) (repository.Store, error) {
	switch config.Database.Driver {
	case DriverMongo:
		store, err := mongo.Connect(ctx, config.Database.MongoURI, config.Database.MongoDatabase, mongo.Options{
			QueryTimeout: config.Database.QueryTimeout,
			WriteTimeout: config.Database.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		return store, nil
	default:
		dbPath := config.GetDatabasePath()
		if dbPath != ":memory:" {
			if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		store, err := sqlite.NewWithOptions(ctx, dbPath, sqlite.Options{
			QueryTimeout: config.Database.QueryTimeout,
			WriteTimeout: config.Database.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	}
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (repository.Store, error) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return store, nil
}
