package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/pkg/response"
)

// ConsultantHandler handles the consultant profile endpoints
type ConsultantHandler struct {
	consultantService *services.ConsultantService
}

// NewConsultantHandler creates a new consultant handler
func NewConsultantHandler(consultantService *services.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{consultantService: consultantService}
}

// Get returns the consultant profile
// @Summary Get consultant
// @Tags Consultant
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /consultant [get]
func (h *ConsultantHandler) Get(c *fiber.Ctx) error {
	consultant, err := h.consultantService.Get(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrConsultantNotFound) {
			return response.NotFound(c, "Consultant not found")
		}
		return response.InternalServerError(c, "Failed to load consultant")
	}
	return response.Success(c, "Consultant retrieved", consultant)
}

// Save upserts the consultant profile
// @Summary Save consultant
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body services.ConsultantInput true "Consultant"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/consultant [put]
func (h *ConsultantHandler) Save(c *fiber.Ctx) error {
	var req services.ConsultantInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	consultant, err := h.consultantService.Save(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrConsultantNameRequired) {
			return response.BadRequest(c, "Name is required")
		}
		return response.InternalServerError(c, "Failed to save consultant")
	}
	return response.Success(c, "Consultant saved", consultant)
}
