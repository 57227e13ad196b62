package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/broadcast"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/config"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/events"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/handler"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/repository"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/router"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/selection"
	"github.com/JBombar/PremiumCarsEU-sub001/internal/usecase"
)

type Server struct {
	HTTP      *http.Server
	Broadcast *broadcast.Publisher // nil when AMQP is not configured
}

func NewServer(cfg config.AppConfig) *Server {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// --- DB connection ---
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// --- Repositories ---
	offerRepo := repository.NewOfferRepo(db)
	leadRepo := repository.NewLeadRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)
	rentalRepo := repository.NewRentalRepo(db)
	shareRepo := repository.NewShareRepo(db)

	// --- Redis client ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	// --- Usecases ---
	offerUC := usecase.NewOfferUsecase(offerRepo)
	leadUC := usecase.NewLeadUsecase(leadRepo)
	partnerUC := usecase.NewPartnerUsecase(partnerRepo)
	rentalUC := usecase.NewRentalUsecase(rentalRepo)
	shareUC := usecase.NewShareUsecase(shareRepo, partnerRepo, usecase.ShareOptions{
		DefaultMessage: cfg.DefaultShareMessage,
		DedupeContacts: cfg.DedupeContacts,
	})

	// --- Fan-out plumbing ---
	eventPublisher := events.NewEventPublisher(rdb, logger)
	webhookNotifier := broadcast.NewWebhookNotifier(logger)
	selectionStore := selection.NewRedisStore(rdb)

	var broadcastPublisher *broadcast.Publisher
	if cfg.AMQPURL != "" {
		broadcastPublisher, err = broadcast.NewPublisher(cfg.AMQPURL, cfg.ShareExchange, logger)
		if err != nil {
			// Broadcast is supplementary; the dashboard runs without it.
			logger.Warn("broadcast publisher disabled", zap.Error(err))
			broadcastPublisher = nil
		}
	}

	// --- Handlers ---
	h := router.Handlers{
		Offers:    handler.NewOfferHandler(offerUC),
		Leads:     handler.NewLeadHandler(leadUC),
		Partners:  handler.NewPartnerHandler(partnerUC, logger),
		Rentals:   handler.NewRentalHandler(rentalUC),
		Share:     handler.NewShareHandler(shareUC, eventPublisher, broadcastPublisher, webhookNotifier, selectionStore, logger),
		Selection: handler.NewSelectionHandler(selectionStore),
		Export:    handler.NewExportHandler(offerUC, shareUC),
	}

	// --- HTTP router ---
	r := chi.NewRouter()
	router.SetupRoutes(r, h, cfg.JWTSecret, rdb, logger)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	return &Server{
		HTTP:      httpSrv,
		Broadcast: broadcastPublisher,
	}
}

// StartHTTP runs the HTTP server
func (s *Server) StartHTTP() error {
	log.Printf("Admin HTTP service listening on %s", s.HTTP.Addr)
	return s.HTTP.ListenAndServe()
}
