package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/core/store"
)

// NotificationHandler exposes the transient notification queue. Notifications
// expire on their own after the store's display TTL; the DELETE endpoint lets
// a client dismiss one early, and dismissing an already-removed notification
// is a no-op.
type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

// List handles GET /v1/notifications.
//
// @Summary      List pending notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationListResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	snap := h.store.Snapshot()
	return c.JSON(http.StatusOK, notificationListResponse{Items: snap.Notifications})
}

// Dismiss handles DELETE /v1/notifications/:id.
//
// @Summary      Dismiss a notification
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  notificationListResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
	}

	snap := h.store.Dispatch(store.HideNotification{ID: id})
	return c.JSON(http.StatusOK, notificationListResponse{Items: snap.Notifications})
}
