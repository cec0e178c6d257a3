package fakeapi

import (
	"net/http"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// ProfileHandler serves /api/profile and the read side of /api/users.
type ProfileHandler struct {
	Store *Store
}

// Get handles GET /api/profile for the current user.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r, h.Store)
	if !ok {
		return
	}
	p, err := h.Store.Profile(u.ID)
	if err != nil {
		writeStoreError(w, err, "Profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/profile. Name and type default to the account's.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r, h.Store)
	if !ok {
		return
	}
	var p models.UserProfile
	if !decode(w, r, &p) {
		return
	}
	if p.Name == "" {
		p.Name = u.Name
	}
	if p.UserType == "" {
		p.UserType = u.UserType
	}
	writeJSON(w, http.StatusOK, h.Store.PutProfile(u.ID, p))
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(w, r, h.Store)
	if !ok {
		return
	}
	var upd models.UserProfileUpdate
	if !decode(w, r, &upd) {
		return
	}
	p, err := h.Store.UpdateProfile(u.ID, upd)
	if err != nil {
		writeStoreError(w, err, "Profile")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Public handles GET /api/profile/public/{id}; no token needed.
func (h *ProfileHandler) Public(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.Store.Profile(id)
	if err != nil {
		writeStoreError(w, err, "Profile")
		return
	}
	p.NotificationsSettings = nil
	writeJSON(w, http.StatusOK, p)
}

// User handles GET /api/users/{id}.
func (h *ProfileHandler) User(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, _, err := h.Store.User(id)
	if err != nil {
		writeStoreError(w, err, "User")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UserEvents handles GET /api/users/{id}/events.
func (h *ProfileHandler) UserEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Store.EventsOf(id))
}
