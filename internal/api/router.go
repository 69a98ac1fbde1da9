package api

import (
	"net/http"

	"github.com/forgeline/content-studio/internal/api/handler"
	custommw "github.com/forgeline/content-studio/internal/api/middleware"
	"github.com/forgeline/content-studio/internal/archive"
	"github.com/forgeline/content-studio/internal/config"
	"github.com/forgeline/content-studio/internal/generator"
	"github.com/forgeline/content-studio/internal/generator/gemini"
	"github.com/forgeline/content-studio/internal/generator/huggingface"
	"github.com/forgeline/content-studio/internal/image"
	"github.com/forgeline/content-studio/internal/image/diffusion"
	"github.com/forgeline/content-studio/internal/image/stock"
	"github.com/forgeline/content-studio/internal/redis"
	"github.com/forgeline/content-studio/internal/security"
	"github.com/forgeline/content-studio/internal/service"
	"github.com/forgeline/content-studio/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, history store.HistoryStore, users store.UserStore, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Security
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Text generation providers
	genRouter := generator.NewRouter(cfg.Generator.DefaultProvider)
	if cfg.Generator.HuggingFace.Token != "" {
		genRouter.RegisterProvider(huggingface.NewProvider(
			cfg.Generator.HuggingFace.Token,
			cfg.Generator.HuggingFace.Model,
			cfg.Generator.RequestTimeout,
		))
	}
	if cfg.Generator.Gemini.APIKey != "" {
		genRouter.RegisterProvider(gemini.NewProvider(cfg.Generator.Gemini))
	}
	if providers := genRouter.ListProviders(); len(providers) > 0 {
		log.Info().Strs("providers", providers).Msg("remote text generation enabled")
	} else {
		log.Info().Msg("no text generation credentials, offline templates only")
	}

	// Image strategy. Both strategies satisfy the same contract; the config
	// picks which one serves /api/generate.
	var imageProvider image.Provider
	switch cfg.Image.Strategy {
	case "diffusion":
		imageProvider = diffusion.NewProvider(cfg.Image.Token, cfg.Image.Dir, cfg.Generator.RequestTimeout)
	default:
		imageProvider = stock.NewProvider()
	}

	// Services
	contentService := service.NewContentService(genRouter, imageProvider, history, cfg.Image.Enabled)
	authService := service.NewAuthService(users, jwtManager)
	scraper := service.NewScraper(cfg.Scraper.Timeout, cfg.Scraper.MaxLength)
	bundler := archive.NewBundler(cfg.Scraper.Timeout)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService)
	authHandler := handler.NewAuthHandler(authService)
	downloadHandler := handler.NewDownloadHandler(bundler)
	scrapeHandler := handler.NewScrapeHandler(scraper)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)

		r.Group(func(r chi.Router) {
			if redisClient != nil {
				rateLimiter := redis.NewRateLimiter(redisClient, cfg.Redis.RequestsPerMinute, cfg.Redis.Burst)
				r.Use(custommw.NewRateLimitMiddleware(rateLimiter).Limit)
			}
			r.Post("/generate", contentHandler.Generate)
			r.Post("/scrape", scrapeHandler.Scrape)
		})

		r.Post("/download", downloadHandler.Download)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(custommw.RequireBearer)
				r.Get("/validate", authHandler.Validate)
			})
		})

		// Global shared history, matching the source system: no auth, no
		// per-user scoping.
		r.Route("/history", func(r chi.Router) {
			r.Get("/", contentHandler.History)
			r.Get("/{contentID}", contentHandler.HistoryEntry)
		})
	})

	// Saved diffusion images
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return r
}
