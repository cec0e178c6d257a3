package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/gramudyogai/gramudyog-go/internal/models"
)

// NotificationHandler serves /api/notifications.
type NotificationHandler struct {
	Store *Store
}

// List handles GET /api/notifications?user_id=&unread_only=&limit=&offset=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := paging(w, r, 50)
	if !ok {
		return
	}
	q := r.URL.Query()
	userID, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "user_id is required")
		return
	}
	unread := boolParam(r, "unread_only")
	writeJSON(w, http.StatusOK, h.Store.Notifications(userID, unread != nil && *unread, q.Get("notification_type"), limit, offset))
}

func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := h.Store.Notification(id)
	if err != nil {
		writeStoreError(w, err, "Notification")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.NotificationCreate
	if !decode(w, r, &in) {
		return
	}
	if in.UserID == 0 || in.Title == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "user_id and title are required")
		return
	}
	writeJSON(w, http.StatusOK, h.Store.CreateNotification(in))
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteNotification(id); err != nil {
		writeStoreError(w, err, "Notification")
		return
	}
	writeMessage(w, "Notification deleted successfully")
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.MarkRead(id, 0); err != nil {
		writeStoreError(w, err, "Notification")
		return
	}
	writeMessage(w, "Notification marked as read")
}

// MarkAllRead handles PUT /api/notifications/user/{id}/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	_ = h.Store.MarkRead(0, id)
	writeMessage(w, "All notifications marked as read")
}

// UnreadCount handles GET /api/notifications/unread-count/{id}.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, models.UnreadCount{UnreadCount: h.Store.UnreadCount(id)[""]})
}

// Types handles GET /api/notifications/types/{id}: unread counts per type.
func (h *NotificationHandler) Types(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	counts := h.Store.UnreadCount(id)
	delete(counts, "")
	writeJSON(w, http.StatusOK, counts)
}
