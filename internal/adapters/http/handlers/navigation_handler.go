package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/pkg/response"
)

// NavigationHandler serves the menu links
type NavigationHandler struct {
	navbarService *services.NavbarService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navbarService *services.NavbarService) *NavigationHandler {
	return &NavigationHandler{navbarService: navbarService}
}

// SaveNavbarRequest is the body of the navbar editor save
type SaveNavbarRequest struct {
	Links []services.EditorRow `json:"links" validate:"required,max=5,dive"`
}

// Resolve returns the resolved menu destinations
// @Summary Resolve menu links
// @Description Resolve the five menu destinations from the admin-entered links
// @Tags Navigation
// @Produce json
// @Success 200 {object} response.Response{data=navigation.URLs}
// @Router /navigation [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	return response.Success(c, "Navigation resolved", h.navbarService.Resolve(c.UserContext()))
}

// List returns the stored navbar rows
// @Summary List navbar links
// @Tags Navigation
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /navbar-links [get]
func (h *NavigationHandler) List(c *fiber.Ctx) error {
	links, err := h.navbarService.List(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, "Failed to load navbar links")
	}
	return response.Success(c, "Navbar links retrieved", links)
}

// EditorRows returns one row per fixed menu slot
// @Summary Navbar editor rows
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param defaults query bool false "Fill missing slots with their default url"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /admin/navbar-links/editor [get]
func (h *NavigationHandler) EditorRows(c *fiber.Ctx) error {
	rows, err := h.navbarService.EditorRows(c.UserContext(), c.QueryBool("defaults", false))
	if err != nil {
		return response.InternalServerError(c, "Failed to load navbar links")
	}
	return response.Success(c, "Navbar editor rows retrieved", rows)
}

// Save reconciles the editor rows with the store
// @Summary Save navbar links
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body SaveNavbarRequest true "Editor rows"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /admin/navbar-links [put]
func (h *NavigationHandler) Save(c *fiber.Ctx) error {
	var req SaveNavbarRequest
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	rows, err := h.navbarService.Save(c.UserContext(), req.Links)
	if err != nil {
		if isNavbarInputError(err) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to save navbar links")
	}
	return response.Success(c, "Navbar links saved", rows)
}

func isNavbarInputError(err error) bool {
	return errors.Is(err, services.ErrUnknownNavbarTitle) || errors.Is(err, services.ErrDuplicateNavbarTitle)
}
