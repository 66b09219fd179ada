package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/response"
	"github.com/gatherly/gatherly/pkg/validation"
)

type RSVPHandler struct {
	Svc    *application.RSVPService
	Logger *logrus.Logger
}

func NewRSVPHandler(svc *application.RSVPService, logger *logrus.Logger) *RSVPHandler {
	return &RSVPHandler{Svc: svc, Logger: logger}
}

type submitRSVPRequest struct {
	Status string `json:"status" binding:"required,rsvpstatus"`
	Notes  string `json:"notes" binding:"max=500"`
}

func rsvpJSON(r entity.RSVP) gin.H {
	out := gin.H{
		"id":         r.ID,
		"user_id":    r.UserID,
		"event_id":   r.EventID,
		"status":     r.Status,
		"created_at": r.CreatedAt,
		"updated_at": r.UpdatedAt,
	}
	if r.Notes != "" {
		out["notes"] = r.Notes
	}
	return out
}

// Mine returns the caller's RSVP for the event; anonymous callers get
// null data rather than an error.
func (h *RSVPHandler) Mine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	rsvp, err := h.Svc.Mine(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rsvp == nil {
		response.Success[any](c, http.StatusOK, nil, "no rsvp", nil)
		return
	}
	response.Success(c, http.StatusOK, rsvpJSON(*rsvp), "rsvp", nil)
}

// ListForEvent returns every RSVP on the event with attendee name and
// email. Organizer of the event only.
func (h *RSVPHandler) ListForEvent(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	rsvps, err := h.Svc.ListForEvent(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(rsvps))
	for _, r := range rsvps {
		item := rsvpJSON(r.RSVP)
		item["user"] = gin.H{"name": r.User.Name, "email": r.User.Email}
		out = append(out, item)
	}
	response.Success(c, http.StatusOK, out, "rsvps", gin.H{"count": len(out)})
}

// Submit upserts the caller's RSVP for the event.
func (h *RSVPHandler) Submit(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req submitRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Submit(c.Request.Context(), uid, c.Param("id"), req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "rsvp recorded", nil)
}

func (h *RSVPHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "rsvp withdrawn", nil)
}
