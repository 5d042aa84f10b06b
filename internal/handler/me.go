package handler

import (
	"net/http"
	"strconv"

	"github.com/outpost-ops/taskboard/backend/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Person)
	h.successResponse(w, r, "account info fetched", myInfo)
}

// requesterInfo loads the logged-in person from the token subject. Handlers
// outside the myInfo middleware use it when a write must record its author.
func (h *Handler) requesterInfo(r *http.Request) (*domain.Person, error) {
	sub, err := strconv.ParseInt(r.Context().Value(SubCtxKey).(string), 10, 64)
	if err != nil {
		return nil, err
	}
	return h.repository.GetPersonByID(sub)
}
