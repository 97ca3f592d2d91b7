package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
	"github.com/ukuku360/RK-explore-sub000/internal/community"
	"github.com/ukuku360/RK-explore-sub000/internal/config"
	"github.com/ukuku360/RK-explore-sub000/internal/feed"
	"github.com/ukuku360/RK-explore-sub000/internal/kvstore"
	"github.com/ukuku360/RK-explore-sub000/internal/notification"
	"github.com/ukuku360/RK-explore-sub000/internal/onboarding"
	"github.com/ukuku360/RK-explore-sub000/internal/postform"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Store kvstore.Store
	Log   *slog.Logger
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
		Log:   slog.Default(),
	}
	if redisClient != nil {
		s.Store = kvstore.NewRedisStore(redisClient)
	} else {
		s.Log.Warn("redis not configured, using in-memory store")
		s.Store = kvstore.NewMemoryStore()
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	posts := feed.NewService(s.DB)
	states := onboarding.NewStateRepository(s.Store, s.Log)
	drafts := postform.NewDraftRepository(s.Store, s.Cfg.DraftTTL, s.Log)

	feed.RegisterRoutes(s.App.Group("/posts"), posts, jwtMiddleware)
	community.RegisterRoutes(s.App.Group("/community"), community.NewService(s.DB), jwtMiddleware)
	notification.RegisterRoutes(s.App.Group("/notifications"),
		notification.NewService(s.DB, posts, s.Cfg.NotificationRetentionDays), jwtMiddleware)
	onboarding.RegisterRoutes(s.App.Group("/onboarding"), onboarding.NewService(s.DB, states), jwtMiddleware)
	postform.RegisterRoutes(s.App.Group("/drafts"), drafts, jwtMiddleware)
}
