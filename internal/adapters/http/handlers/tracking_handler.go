package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/pkg/pagination"
	"finz-affiliate/internal/pkg/response"
)

// TrackingHandler handles the tracking beacons and the admin statistics
type TrackingHandler struct {
	trackingService *services.TrackingService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingService *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// ============================================================
// Public beacons
// ============================================================

// StartSession starts a visit session
// @Summary Start tracking session
// @Description Start a session for a page load; device is derived from the User-Agent
// @Tags Tracking
// @Produce json
// @Success 201 {object} response.Response{data=tracking.Snapshot}
// @Router /tracking/sessions [post]
func (h *TrackingHandler) StartSession(c *fiber.Ctx) error {
	snap := h.trackingService.StartSession(c.Get(fiber.HeaderUserAgent))
	return response.Created(c, "Session started", snap)
}

// UpdateScroll records the scroll position of a session
// @Summary Update scroll depth
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body services.ScrollInput true "Scroll geometry or depth"
// @Success 200 {object} response.Response{data=tracking.Snapshot}
// @Failure 404 {object} response.Response
// @Router /tracking/sessions/{id}/scroll [put]
func (h *TrackingHandler) UpdateScroll(c *fiber.Ctx) error {
	var req services.ScrollInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	snap, err := h.trackingService.UpdateScroll(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return response.NotFound(c, "Session not found")
		}
		return response.InternalServerError(c, "Failed to update session")
	}
	return response.Success(c, "Scroll updated", snap)
}

// EndSession forgets a session
// @Summary End tracking session
// @Description Sent when the page unloads; unknown sessions are accepted too
// @Tags Tracking
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} response.Response
// @Router /tracking/sessions/{id} [delete]
func (h *TrackingHandler) EndSession(c *fiber.Ctx) error {
	h.trackingService.EndSession(c.Params("id"))
	return response.Accepted(c, "Session ended")
}

// RecordImpression queues an impression
// @Summary Record impression
// @Description Accepted immediately; the write happens in the background
// @Tags Tracking
// @Accept json
// @Produce json
// @Param body body services.ImpressionInput true "Impression"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tracking/impressions [post]
func (h *TrackingHandler) RecordImpression(c *fiber.Ctx) error {
	var req services.ImpressionInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if req.Path == "" {
		req.Path = refererPath(c)
	}

	h.trackingService.RecordImpression(req)
	return response.Accepted(c, "Impression accepted")
}

// RecordClick queues a click
// @Summary Record click
// @Description Accepted immediately; the write happens in the background
// @Tags Tracking
// @Accept json
// @Produce json
// @Param body body services.ClickInput true "Click"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tracking/clicks [post]
func (h *TrackingHandler) RecordClick(c *fiber.Ctx) error {
	var req services.ClickInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if req.Path == "" {
		req.Path = refererPath(c)
	}

	h.trackingService.RecordClick(req)
	return response.Accepted(c, "Click accepted")
}

// RecordNavigationClick queues a menu click
// @Summary Record navigation click
// @Tags Tracking
// @Accept json
// @Produce json
// @Param body body services.NavigationClickInput true "Navigation click"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tracking/navigation [post]
func (h *TrackingHandler) RecordNavigationClick(c *fiber.Ctx) error {
	var req services.NavigationClickInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	h.trackingService.RecordNavigationClick(req)
	return response.Accepted(c, "Navigation click accepted")
}

// ============================================================
// Admin
// ============================================================

// Stats returns the aggregated statistics
// @Summary Tracking statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=tracking.Stats}
// @Failure 500 {object} response.Response
// @Router /admin/tracking/stats [get]
func (h *TrackingHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.trackingService.FetchStats(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, "Failed to load tracking statistics: "+err.Error())
	}
	return response.Success(c, "Tracking statistics retrieved", stats)
}

// Impressions lists raw impressions
// @Summary List impressions
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Rows per page"
// @Success 200 {object} response.Response{data=pagination.Response}
// @Router /admin/tracking/impressions [get]
func (h *TrackingHandler) Impressions(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	rows, total, err := h.trackingService.ListImpressions(c.UserContext(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to load impressions")
	}
	return response.Success(c, "Impressions retrieved", pagination.NewResponse(rows, params, total))
}

// Clicks lists raw clicks
// @Summary List clicks
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Rows per page"
// @Success 200 {object} response.Response{data=pagination.Response}
// @Router /admin/tracking/clicks [get]
func (h *TrackingHandler) Clicks(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	rows, total, err := h.trackingService.ListClicks(c.UserContext(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to load clicks")
	}
	return response.Success(c, "Clicks retrieved", pagination.NewResponse(rows, params, total))
}

// SeedTestData inserts sample events
// @Summary Insert tracking test data
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response{data=services.SeedResult}
// @Failure 409 {object} response.Response
// @Router /admin/tracking/test-data [post]
func (h *TrackingHandler) SeedTestData(c *fiber.Ctx) error {
	result, err := h.trackingService.SeedTestData(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughPackages) {
			return response.Conflict(c, "At least 3 loan packages are needed to create test data")
		}
		return response.InternalServerError(c, "Failed to create test data")
	}
	return response.Created(c, "Test data created", result)
}

// Clear deletes every tracking event
// @Summary Clear tracking data
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/tracking [delete]
func (h *TrackingHandler) Clear(c *fiber.Ctx) error {
	if err := h.trackingService.Clear(c.UserContext()); err != nil {
		return response.InternalServerError(c, "Failed to clear tracking data")
	}
	return response.Success(c, "Tracking data cleared", nil)
}
