package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/grocery-list/config"
	mongoinfra "github.com/oksasatya/grocery-list/internal/infrastructure/mongodb"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongo.Client
	redisClient *redis.Client
	registry    *prometheus.Registry
	repoMetrics *mongoinfra.Metrics
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetMongo(c *mongo.Client)           { mongoClient = c }
func GetMongo() *mongo.Client            { return mongoClient }
func SetRedis(r *redis.Client)           { redisClient = r }
func GetRedis() *redis.Client            { return redisClient }
func SetRegistry(r *prometheus.Registry) { registry = r }
func GetRegistry() *prometheus.Registry  { return registry }

func SetRepoMetrics(m *mongoinfra.Metrics) { repoMetrics = m }
func GetRepoMetrics() *mongoinfra.Metrics  { return repoMetrics }

// GetDatabase returns the configured database on the shared client.
func GetDatabase() *mongo.Database {
	if mongoClient == nil || cfg == nil {
		return nil
	}
	return mongoClient.Database(cfg.MongoDatabase)
}
