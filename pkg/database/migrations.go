package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}
		}
	}

	return nil
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := m.db.Collection("migrations").FindOne(ctx, bson.M{}, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").InsertOne(ctx, bson.M{
		"version":    version,
		"applied_at": time.Now(),
	})
	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "unique indexes on public identifiers",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				unique := options.Index().SetUnique(true)

				indexes := map[string]mongo.IndexModel{
					"users":       {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
					"packages":    {Keys: bson.D{{Key: "package_id", Value: 1}}, Options: unique},
					"orders":      {Keys: bson.D{{Key: "order_id", Value: 1}}, Options: unique},
					"promo_codes": {Keys: bson.D{{Key: "code", Value: 1}}, Options: unique},
					// One rating per order is enforced here, not in application code.
					"ratings": {Keys: bson.D{{Key: "order_id", Value: 1}}, Options: unique},
				}

				for collection, model := range indexes {
					if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
						return fmt.Errorf("failed to create index on %s: %w", collection, err)
					}
				}

				return nil
			},
		},
		{
			Version:     2,
			Description: "query indexes for listings",
			Up: func(db *mongo.Database) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				models := map[string]mongo.IndexModel{
					"packages": {Keys: bson.D{{Key: "is_active", Value: 1}}},
					"orders":   {Keys: bson.D{{Key: "created_at", Value: -1}}},
					"ratings":  {Keys: bson.D{{Key: "is_approved", Value: 1}, {Key: "created_at", Value: 1}}},
				}

				for collection, model := range models {
					if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
						return fmt.Errorf("failed to create index on %s: %w", collection, err)
					}
				}

				return nil
			},
		},
	}
}
