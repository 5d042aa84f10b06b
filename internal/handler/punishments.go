package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (h *Handler) GetPunishments(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	punishments, err := h.repository.GetPunishmentsBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "punishments fetched", punishments)
}

func (h *Handler) CreatePunishment(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)
	myInfo, err := h.requesterInfo(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	var req struct {
		PersonID int64  `json:"personID" validate:"required"`
		Reason   string `json:"reason" validate:"required"`
		Sanction string `json:"sanction" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	person, err := h.repository.GetPersonByID(req.PersonID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "person not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if person.SiteID != site.ID {
		h.errorResponse(w, r, "person not found")
		return
	}

	punishment := &domain.Punishment{
		SiteID:   site.ID,
		PersonID: person.ID,
		IssuerID: myInfo.ID,
		Reason:   req.Reason,
		Sanction: req.Sanction,
		IssuedAt: time.Now(),
	}

	if err := h.repository.CreatePunishment(punishment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	notification := domain.NotificationMessage{
		Type: "punishment",
		To:   person.Email,
		Data: domain.PunishmentMailData{
			FullName: person.FullName,
			Reason:   punishment.Reason,
			Sanction: punishment.Sanction,
			IssuedBy: myInfo.FullName,
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

	h.successResponse(w, r, "punishment recorded", punishment)
}

func (h *Handler) RevokePunishment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid punishment id")
		return
	}

	if err := h.repository.RevokePunishment(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "punishment not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "punishment revoked", nil)
}
