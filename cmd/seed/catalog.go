package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
	mongodoc "github.com/havenrealty/listings-api/internal/infrastructure/mongo"
)

type collections struct {
	properties          string
	agents              string
	inquiries           string
	failedNotifications string
}

func collectionsFromEnv() collections {
	return collections{
		properties:          envOrDefault("PROPERTY_COLLECTION", "properties"),
		agents:              envOrDefault("AGENT_COLLECTION", "agents"),
		inquiries:           envOrDefault("INQUIRY_COLLECTION", "inquiries"),
		failedNotifications: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
	}
}

func catalogCmd(opts *seedOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Upsert the compiled-in properties and agents and create indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database) error {
				cfg := collectionsFromEnv()
				if opts.dropCollections {
					dropCollections(ctx, db, cfg)
				}
				if err := ensureIndexes(ctx, db, cfg); err != nil {
					return fmt.Errorf("create indexes: %w", err)
				}
				properties, agents, err := seedCatalog(ctx, db, cfg)
				if err != nil {
					return err
				}
				log.Printf("seed complete: properties=%d agents=%d", properties, agents)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opts.dropCollections, "drop", false, "drop the catalogue collections before seeding")
	return cmd
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the indexes the API relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database) error {
				return ensureIndexes(ctx, db, collectionsFromEnv())
			})
		},
	}
}

func withDatabase(parent context.Context, fn func(context.Context, *mongo.Database) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, 60*time.Second)
	defer cancel()

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "haven-realty")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	log.Printf("mongo: %s / %s", mongoURI, dbName)
	return fn(ctx, client.Database(dbName))
}

// seedCatalog validates the fixture through the same Store the API builds, then upserts it.
func seedCatalog(ctx context.Context, db *mongo.Database, cfg collections) (int, int, error) {
	store, err := application.NewStore(fixture.Properties(), fixture.Agents())
	if err != nil {
		return 0, 0, fmt.Errorf("fixture is inconsistent: %w", err)
	}

	agents := db.Collection(cfg.agents)
	for i, agent := range store.Agents() {
		doc := mongodoc.NewAgentDocument(agent, i)
		if err := upsert(ctx, agents, doc.ID, doc); err != nil {
			return 0, 0, fmt.Errorf("upsert agent %s: %w", doc.ID, err)
		}
	}

	properties := db.Collection(cfg.properties)
	for i, property := range store.Properties() {
		doc := mongodoc.NewPropertyDocument(property, i)
		if err := upsert(ctx, properties, doc.ID, doc); err != nil {
			return 0, 0, fmt.Errorf("upsert property %s: %w", doc.ID, err)
		}
	}

	return len(store.Properties()), len(store.Agents()), nil
}

func upsert(ctx context.Context, col *mongo.Collection, id string, doc any) error {
	_, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{cfg.properties, cfg.agents} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: dropping collection %s failed: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	propertyIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_property_position"),
		},
		{
			Keys:    bson.D{{Key: "city", Value: 1}},
			Options: options.Index().SetName("idx_property_city"),
		},
		{
			Keys:    bson.D{{Key: "price", Value: 1}},
			Options: options.Index().SetName("idx_property_price"),
		},
		{
			Keys:    bson.D{{Key: "propertyType", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_property_type_status"),
		},
		{
			Keys:    bson.D{{Key: "isFeatured", Value: 1}},
			Options: options.Index().SetName("idx_property_featured"),
		},
		{
			Keys:    bson.D{{Key: "agentId", Value: 1}},
			Options: options.Index().SetName("idx_property_agent"),
		},
		{
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("geo_property_location"),
		},
	}
	if _, err := db.Collection(cfg.properties).Indexes().CreateMany(ctx, propertyIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.agents).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "position", Value: 1}},
		Options: options.Index().SetName("idx_agent_position"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.inquiries).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_inquiry_status_created"),
		},
		{
			Keys:    bson.D{{Key: "agentId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_inquiry_agent_created"),
		},
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.failedNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_failed_status_created"),
	}); err != nil {
		return err
	}

	return nil
}
