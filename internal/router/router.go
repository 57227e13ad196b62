package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JBombar/PremiumCarsEU-sub001/internal/handler"
	"github.com/JBombar/PremiumCarsEU-sub001/pkg/auth"
)

type Handlers struct {
	Offers    *handler.OfferHandler
	Leads     *handler.LeadHandler
	Partners  *handler.PartnerHandler
	Rentals   *handler.RentalHandler
	Share     *handler.ShareHandler
	Selection *handler.SelectionHandler
	Export    *handler.ExportHandler
}

func SetupRoutes(
	r chi.Router,
	h Handlers,
	jwtSecret string,
	rdb *redis.Client,
	logger *zap.Logger,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(auth.RateLimit(rdb, 100, time.Minute, logger))
	r.Use(auth.Session(jwtSecret, logger))

	// ---- Mount all routes under /admin/svc ----
	r.Route("/admin/svc", func(ar chi.Router) {

		ar.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		// Car offers
		ar.Route("/offers", func(or chi.Router) {
			or.Get("/", h.Offers.ListOffers)
			or.Get("/{id}", h.Offers.GetOffer)
			or.Patch("/{id}/field", h.Offers.UpdateOfferField)
			or.Delete("/{id}", h.Offers.DeleteOffer)
		})

		// Leads
		ar.Route("/leads", func(lr chi.Router) {
			lr.Get("/", h.Leads.ListLeads)
			lr.Patch("/{id}/field", h.Leads.UpdateLeadField)
			lr.Delete("/{id}", h.Leads.DeleteLead)
		})

		// Partner network
		ar.Route("/partners", func(pr chi.Router) {
			pr.Get("/", h.Partners.ListPartners)
			pr.Get("/directory", h.Partners.PartnerDirectory)
			pr.Get("/{id}", h.Partners.GetPartner)
			pr.Patch("/{id}/field", h.Partners.UpdatePartnerField)
			pr.Delete("/{id}", h.Partners.DeletePartner)
		})

		// Rentals
		ar.Route("/rentals", func(rr chi.Router) {
			rr.Get("/reservations", h.Rentals.ListReservations)
			rr.Patch("/reservations/{id}/field", h.Rentals.UpdateReservationField)
			rr.Delete("/reservations/{id}", h.Rentals.DeleteReservation)
			rr.Get("/clients", h.Rentals.ListClients)
			rr.Patch("/clients/{id}/field", h.Rentals.UpdateClientField)
		})

		// Sharing workflow
		ar.Route("/share", func(sr chi.Router) {
			sr.Post("/offers", h.Share.ShareOffers)
			sr.Post("/leads", h.Share.ShareLeads)
			sr.Post("/partners", h.Share.SharePartners)
			sr.Post("/rentals", h.Share.ShareRentals)
			sr.Get("/history", h.Share.GetShareHistory)
		})

		// Selection sync
		ar.Route("/selection/{entity}", func(sr chi.Router) {
			sr.Get("/", h.Selection.GetSelection)
			sr.Put("/toggle-all", h.Selection.ToggleAll)
			sr.Put("/toggle-one", h.Selection.ToggleOne)
		})

		// Exports
		ar.Route("/export", func(er chi.Router) {
			er.Get("/offers.xlsx", h.Export.ExportOffers)
			er.Get("/share-history.xlsx", h.Export.ExportShareHistory)
		})
	})

	return r
}
