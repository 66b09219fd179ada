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

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Role             string   `json:"role" binding:"required,profilerole"`
	OrganizationName string   `json:"organization_name"`
	Bio              string   `json:"bio" binding:"max=1000"`
	Interests        []string `json:"interests"`
	ContactInfo      string   `json:"contact_info"`
}

type updateProfileRequest struct {
	OrganizationName *string  `json:"organization_name"`
	Bio              *string  `json:"bio" binding:"omitempty,max=1000"`
	Interests        []string `json:"interests"`
	ContactInfo      *string  `json:"contact_info"`
}

func profileJSON(p *entity.Profile) gin.H {
	if p == nil {
		return nil
	}
	return gin.H{
		"id":                p.ID,
		"role":              p.Role,
		"organization_name": p.OrganizationName,
		"bio":               p.Bio,
		"interests":         p.Interests,
		"contact_info":      p.ContactInfo,
		"created_at":        p.CreatedAt,
	}
}

// Me resolves the caller to user record plus profile. Anonymous callers
// get null data, matching the soft read-path contract.
func (h *ProfileHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	cu, err := h.Svc.Current(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	if cu == nil {
		response.Success[any](c, http.StatusOK, nil, "anonymous", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":      cu.User.ID,
		"email":   cu.User.Email,
		"name":    cu.User.Name,
		"profile": profileJSON(cu.Profile),
	}, "current user", nil)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), uid, application.CreateProfileInput{
		Role:             req.Role,
		OrganizationName: req.OrganizationName,
		Bio:              req.Bio,
		Interests:        req.Interests,
		ContactInfo:      req.ContactInfo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id}, "profile created", nil)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Update(c.Request.Context(), uid, application.UpdateProfileInput{
		OrganizationName: req.OrganizationName,
		Bio:              req.Bio,
		Interests:        req.Interests,
		ContactInfo:      req.ContactInfo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "profile updated", nil)
}
