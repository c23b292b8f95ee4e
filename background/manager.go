package background

import (
	"context"
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderly/discovery-api/cache"
	"github.com/wanderly/discovery-api/external/geoinfo"
	"github.com/wanderly/discovery-api/recommend"
	"github.com/wanderly/discovery-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager owns the worker-side wiring of the analysis tasks.
type BackgroundManager struct {
	store store.DiscoveryStore

	trends *recommend.TrendAnalyzer

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, trendingCache cache.TrendingCache, geoClient geoinfo.GeoInfo, taskServer *machinery.Server) *BackgroundManager {
	discoveryStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		geoClient,
	)

	return &BackgroundManager{
		store:      discoveryStore,
		trends:     recommend.NewTrendAnalyzer(discoveryStore, trendingCache, recommend.TrendConfigFromViper()),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("discovery-worker", 5)
	return m.worker.Launch()
}

// RefreshTrending recomputes and caches the trending list of one cell.
func (m *BackgroundManager) RefreshTrending(geohash string) error {
	list, err := m.trends.RefreshTrending(context.Background(), geohash)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"geohash": geohash,
		"places":  len(list.Places),
	}).Info("refreshed trending list")
	return nil
}

// AnalyzeSeasonalTrends rebuilds the seasonal aggregates for every POI.
func (m *BackgroundManager) AnalyzeSeasonalTrends() error {
	return m.trends.AnalyzeSeasonalTrends(context.Background())
}

// CleanupBlacklist reaps expired blacklist entries.
func (m *BackgroundManager) CleanupBlacklist() error {
	removed, err := m.trends.CleanupExpiredBlacklist(context.Background())
	if err != nil {
		return err
	}

	log.WithField("removed", removed).Info("cleaned up expired blacklist entries")
	return nil
}
