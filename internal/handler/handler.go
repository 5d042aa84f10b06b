package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/outpost-ops/taskboard/backend/internal/config"
	"github.com/outpost-ops/taskboard/backend/internal/repository"
	"github.com/outpost-ops/taskboard/backend/internal/storage"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client
	photos        *storage.PhotoStore // nil when no bucket is configured
	metrics       *metrics

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client, photos *storage.PhotoStore) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,
		photos:        photos,
		metrics:       newMetrics(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.observe)

	h.Mux.Handle("/metrics", promhttp.Handler())

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.myInfo).Get("/my-info", h.GetMyInfo)

		r.Get("/sites", h.GetAllSites)

		r.Route("/sites/{siteID}", func(r chi.Router) {
			r.Use(h.site)

			r.Route("/people", func(r chi.Router) {
				r.Get("/", h.GetSitePeople)
				r.With(h.requireCommander).Post("/", h.CreatePerson)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.personInfo)
					r.Get("/", h.GetPerson)
					r.With(h.requireCommander).Patch("/", h.UpdatePerson)
					r.With(h.requireCommander).Delete("/", h.DeletePerson)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Get("/", h.GetRoster)
				r.With(h.requireEditor).Put("/", h.UpsertRosterDay)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.GetTasks)
				r.With(h.requireEditor).Post("/", h.CreateTask)
				r.With(h.requireEditor).Patch("/{id}", h.UpdateTask)
				r.With(h.requireEditor).Delete("/{id}", h.DeleteTask)
			})

			r.Route("/parade-days", func(r chi.Router) {
				r.Get("/", h.GetParadeDays)
				r.With(h.requireEditor).Put("/", h.SetParadeDay)
			})

			r.Route("/board", func(r chi.Router) {
				r.Get("/", h.GetBoard)
				r.With(h.requireEditor).Post("/save", h.SaveBoard)
			})

			r.Route("/inspections", func(r chi.Router) {
				r.Get("/", h.GetInspections)
				r.With(h.requireEditor).Post("/", h.CreateInspection)
				r.With(h.requireEditor).Patch("/{id}", h.UpdateInspection)
				r.With(h.requireEditor).Delete("/{id}", h.DeleteInspection)
			})

			r.Route("/punishments", func(r chi.Router) {
				r.Get("/", h.GetPunishments)
				r.With(h.requireEditor).Post("/", h.CreatePunishment)
				r.With(h.requireEditor).Post("/{id}/revoke", h.RevokePunishment)
			})

			r.Route("/safety-events", func(r chi.Router) {
				r.Get("/", h.GetSafetyEvents)
				r.With(h.requireEditor).Post("/", h.CreateSafetyEvent)
				r.With(h.requireEditor).Delete("/{id}", h.DeleteSafetyEvent)
			})

			r.Route("/photos", func(r chi.Router) {
				r.With(h.requireEditor).Post("/", h.UploadPhoto)
				r.Get("/*", h.GetPhoto)
			})
		})
	})
}
