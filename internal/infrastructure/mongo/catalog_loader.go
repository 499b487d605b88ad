package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	catalogdomain "github.com/havenrealty/listings-api/internal/catalog/domain"
)

// CatalogLoader reads the listing catalogue once to build the immutable store.
type CatalogLoader struct {
	properties *mongo.Collection
	agents     *mongo.Collection
}

func NewCatalogLoader(db *mongo.Database, propertyCollection, agentCollection string) *CatalogLoader {
	return &CatalogLoader{
		properties: db.Collection(propertyCollection),
		agents:     db.Collection(agentCollection),
	}
}

// Load reads agents and properties in catalogue order and validates them into a Store.
func (l *CatalogLoader) Load(ctx context.Context) (*catalogapp.Store, error) {
	byPosition := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})

	agentDocs, err := findAll[AgentDocument](ctx, l.agents, byPosition)
	if err != nil {
		return nil, fmt.Errorf("load agents: %w", err)
	}
	agents := make([]catalogdomain.Agent, 0, len(agentDocs))
	for _, doc := range agentDocs {
		agents = append(agents, mapAgentDocument(doc))
	}

	propertyDocs, err := findAll[PropertyDocument](ctx, l.properties, byPosition)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}
	properties := make([]catalogdomain.Property, 0, len(propertyDocs))
	for _, doc := range propertyDocs {
		p, err := mapPropertyDocument(doc)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return catalogapp.NewStore(properties, agents)
}

func findAll[T any](ctx context.Context, collection *mongo.Collection, opts *options.FindOptions) ([]T, error) {
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
