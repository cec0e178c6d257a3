package fakeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gramudyogai/gramudyog-go/internal/middleware"
	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// DefaultEventLimit is the page size of the event list.
const DefaultEventLimit = 50

// EventHandler serves /api/events.
type EventHandler struct {
	Store *Store
}

type userRef struct {
	UserID int64 `json:"user_id"`
}

type statusChange struct {
	Status models.EventStatus `json:"status"`
	Reason string             `json:"reason,omitempty"`
}

var validEventStatus = map[models.EventStatus]bool{
	models.EventDraft:     true,
	models.EventActive:    true,
	models.EventOngoing:   true,
	models.EventCompleted: true,
	models.EventCancelled: true,
	models.EventPostponed: true,
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, DefaultEventLimit)
	if !ok {
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.Store.Events(EventQuery{
		EventType: models.EventType(q.Get("event_type")),
		Status:    models.EventStatus(q.Get("status")),
		Location:  q.Get("location"),
	}, limit, offset))
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ev, err := h.Store.Event(id)
	if err != nil {
		writeStoreError(w, err, "Event")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// Create handles POST /api/events?created_by=. The creator falls back to
// the token's user.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.EventCreate
	if !decode(w, r, &in) {
		return
	}
	if in.Title == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	createdBy, _ := strconv.ParseInt(r.URL.Query().Get("created_by"), 10, 64)
	if createdBy == 0 {
		createdBy, _ = middleware.GetUserIDFromContext(r.Context())
	}
	writeJSON(w, http.StatusOK, h.Store.CreateEvent(in, createdBy))
}

// Join handles POST /api/events/{id}/join with a {user_id} body.
func (h *EventHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var ref userRef
	if !decode(w, r, &ref) {
		return
	}
	switch err := h.Store.JoinEvent(id, ref.UserID); {
	case errors.Is(err, ErrExists):
		writeDetail(w, http.StatusBadRequest, "User already registered for this event")
	case errors.Is(err, errEventFull):
		writeDetail(w, http.StatusBadRequest, "Event is full")
	case err != nil:
		writeStoreError(w, err, "Event")
	default:
		writeMessage(w, "Successfully joined event")
	}
}

// Leave handles POST /api/events/{id}/leave with a {user_id} body.
func (h *EventHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var ref userRef
	if !decode(w, r, &ref) {
		return
	}
	if err := h.Store.LeaveEvent(id, ref.UserID); err != nil {
		writeDetail(w, http.StatusNotFound, "User is not registered for this event")
		return
	}
	writeMessage(w, "Successfully left event")
}

// SetStatus handles PUT /api/events/{id}/status?changed_by=.
func (h *EventHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body statusChange
	if !decode(w, r, &body) {
		return
	}
	if !validEventStatus[body.Status] {
		writeDetail(w, http.StatusBadRequest, "Invalid status: "+string(body.Status))
		return
	}
	changedBy, _ := strconv.ParseInt(r.URL.Query().Get("changed_by"), 10, 64)
	if err := h.Store.SetEventStatus(id, body.Status, changedBy, body.Reason); err != nil {
		writeStoreError(w, err, "Event")
		return
	}
	writeMessage(w, "Event status updated to "+string(body.Status))
}

func (h *EventHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.Store.Event(id); err != nil {
		writeStoreError(w, err, "Event")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.EventStatusHistory(id))
}
