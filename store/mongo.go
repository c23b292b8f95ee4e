package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderly/discovery-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// DiscoveryStore - interface for all mongodb operations of the discovery core
type DiscoveryStore interface {
	POI
	ProfileStore
	InteractionStore
	ReviewStore
	BlacklistStore
	SeasonalStore
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations. geoClient may be nil; POI
// registration then skips address enrichment.
func NewMongoStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo) DiscoveryStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
	}
}
