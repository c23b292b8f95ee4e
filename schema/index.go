package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexPOICollection())
	panicIfError(m.IndexInteractionCollection())
	panicIfError(m.IndexReviewCollection())
	panicIfError(m.IndexBlacklistCollection())
	panicIfError(m.IndexSeasonalCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_number": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexPOICollection() error {
	if err := m.createIndex(POICollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(POICollection, mongo.IndexModel{
		Keys: bson.M{
			"external_id": 1,
		},
		Options: options.Index().SetSparse(true),
	})
}

func (m *MongoDBIndexer) IndexInteractionCollection() error {
	if err := m.createIndex(InteractionCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "poi_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(InteractionCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "profile_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexReviewCollection() error {
	return m.createIndex(ReviewCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "poi_id", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexBlacklistCollection() error {
	if err := m.createIndex(BlacklistCollection, mongo.IndexModel{
		Keys: bson.M{
			"poi_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(BlacklistCollection, mongo.IndexModel{
		Keys: bson.M{
			"expires_at": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexSeasonalCollection() error {
	return m.createIndex(SeasonalCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "poi_id", Value: 1},
			{Key: "bucket", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
