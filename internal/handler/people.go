package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
	"github.com/outpost-ops/taskboard/backend/internal/utils"
)

func (h *Handler) GetSitePeople(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	people, err := h.repository.GetPeopleBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "people fetched", people)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=soldier sergeant commander"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(16)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	person := &domain.Person{
		SiteID:       site.ID,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domain.Role(req.Role),
		IsActive:     true,
	}

	if err := h.repository.CreatePerson(person); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "people_username_key":
			h.errorResponse(w, r, "username already taken")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	notification := domain.NotificationMessage{
		Type: "new_account",
		To:   person.Email,
		Data: domain.NewAccountMailData{
			FullName: person.FullName,
			Username: person.Username,
			Password: password,
		},
	}

	body, err := json.Marshal(notification)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "person created, credentials sent by mail", person)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonInfoCtx).(*domain.Person)
	h.successResponse(w, r, "person fetched", person)
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonInfoCtx).(*domain.Person)

	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=soldier sergeant commander"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FullName != nil {
		person.FullName = *req.FullName
	}
	if req.Email != nil {
		person.Email = *req.Email
	}
	if req.Role != nil {
		person.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}

	if err := h.repository.UpdatePerson(person); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "person was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "person updated", person)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonInfoCtx).(*domain.Person)

	if err := h.repository.DeletePerson(person.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "person not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "person deleted", nil)
}
