package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pujakart/auth-service/config"
	"github.com/pujakart/auth-service/internal/application"
	"github.com/pujakart/auth-service/pkg/helpers"
	"github.com/pujakart/auth-service/pkg/sms"
)

// app-level container to share constructed components across packages
// Router modules auto-wire from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gateway     sms.Gateway
	rabbitPub   *helpers.RabbitPublisher
	authService *application.Service
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetGateway(g sms.Gateway)                { gateway = g }
func GetGateway() sms.Gateway                 { return gateway }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetAuthService(s *application.Service)   { authService = s }
func GetAuthService() *application.Service    { return authService }
