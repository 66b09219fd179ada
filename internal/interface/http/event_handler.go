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

// maxImageBytes caps event image uploads.
const maxImageBytes = 5 << 20

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type createEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Date         int64  `json:"date" binding:"required,gt=0"`
	Location     string `json:"location" binding:"required"`
	Category     string `json:"category" binding:"required"`
	ImageURL     string `json:"image_url" binding:"omitempty,url"`
	MaxAttendees *int   `json:"max_attendees" binding:"omitempty,gt=0"`
	IsPublic     *bool  `json:"is_public" binding:"required"`
}

type updateEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *int64  `json:"date" binding:"omitempty,gt=0"`
	Location     *string `json:"location"`
	Category     *string `json:"category"`
	ImageURL     *string `json:"image_url" binding:"omitempty,url"`
	MaxAttendees *int    `json:"max_attendees" binding:"omitempty,gt=0"`
	IsPublic     *bool   `json:"is_public"`
}

func eventJSON(e entity.Event) gin.H {
	out := gin.H{
		"id":           e.ID,
		"title":        e.Title,
		"description":  e.Description,
		"date":         e.Date,
		"location":     e.Location,
		"category":     e.Category,
		"organizer_id": e.OrganizerID,
		"is_public":    e.IsPublic,
		"created_at":   e.CreatedAt,
		"updated_at":   e.UpdatedAt,
	}
	if e.ImageURL != "" {
		out["image_url"] = e.ImageURL
	}
	if e.MaxAttendees != nil {
		out["max_attendees"] = *e.MaxAttendees
	}
	return out
}

// List serves the public catalog, optionally filtered by search term,
// category and location.
func (h *EventHandler) List(c *gin.Context) {
	filter := application.EventFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	events, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.WithError(err).Error("list events failed")
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		item := eventJSON(e.Event)
		item["organizer"] = gin.H{
			"name":              e.Organizer.Name,
			"organization_name": e.Organizer.OrganizationName,
		}
		out = append(out, item)
	}
	response.Success(c, http.StatusOK, out, "events", gin.H{"count": len(out)})
}

func (h *EventHandler) Get(c *gin.Context) {
	detail, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := eventJSON(detail.Event)
	out["organizer"] = gin.H{
		"name":              detail.Organizer.Name,
		"organization_name": detail.Organizer.OrganizationName,
		"contact_info":      detail.Organizer.ContactInfo,
	}
	out["rsvp_counts"] = gin.H{
		"yes":   detail.RSVPCounts.Yes,
		"no":    detail.RSVPCounts.No,
		"maybe": detail.RSVPCounts.Maybe,
	}
	response.Success(c, http.StatusOK, out, "event", nil)
}

// Mine returns the caller's events: owned ones for organizers, RSVPed
// ones (with the RSVP status) for attendees.
func (h *EventHandler) Mine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	events, err := h.Svc.Mine(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		item := eventJSON(e.Event)
		if e.RSVPStatus != "" {
			item["rsvp_status"] = e.RSVPStatus
		}
		out = append(out, item)
	}
	response.Success(c, http.StatusOK, out, "my events", gin.H{"count": len(out)})
}

func (h *EventHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), uid, application.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Location:     req.Location,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		MaxAttendees: req.MaxAttendees,
		IsPublic:     *req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "event created", nil)
}

func (h *EventHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), entity.EventPatch{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Location:     req.Location,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		MaxAttendees: req.MaxAttendees,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "event updated", nil)
}

func (h *EventHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "event deleted", nil)
}

// UploadImage stores a multipart image for the event and patches its
// image URL. Owner only.
func (h *EventHandler) UploadImage(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "image file is required", nil)
		return
	}
	if fh.Size > maxImageBytes {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "image too large", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read upload", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), uid, c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).WithField("event_id", c.Param("id")).Error("image upload failed")
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "image uploaded", nil)
}
