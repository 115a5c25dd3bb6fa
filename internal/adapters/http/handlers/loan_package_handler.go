package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/services"
	"finz-affiliate/internal/pkg/response"
)

// LoanPackageHandler handles catalog endpoints
type LoanPackageHandler struct {
	packageService *services.LoanPackageService
}

// NewLoanPackageHandler creates a new loan package handler
func NewLoanPackageHandler(packageService *services.LoanPackageService) *LoanPackageHandler {
	return &LoanPackageHandler{packageService: packageService}
}

// SavePackageRequest is an upsert body; an empty id creates a package
type SavePackageRequest struct {
	ID string `json:"id"`
	services.LoanPackageInput
}

// List returns the catalog
// @Summary List loan packages
// @Description List packages oldest first, optionally narrowed by the dashboard tab
// @Tags LoanPackages
// @Produce json
// @Param tab query string false "Dashboard tab, matched against slug and name"
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loan-packages [get]
func (h *LoanPackageHandler) List(c *fiber.Ctx) error {
	pkgs, err := h.packageService.List(c.UserContext(), c.Query("tab"))
	if err != nil {
		return response.InternalServerError(c, "Failed to load loan packages")
	}
	return response.Success(c, "Loan packages retrieved", pkgs)
}

// Get returns one package
// @Summary Get loan package
// @Tags LoanPackages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loan-packages/{id} [get]
func (h *LoanPackageHandler) Get(c *fiber.Ctx) error {
	pkg, err := h.packageService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return packageError(c, err, "Failed to load loan package")
	}
	return response.Success(c, "Loan package retrieved", pkg)
}

// Create adds a package
// @Summary Create loan package
// @Description Create a package; at most 8 may exist
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body services.LoanPackageInput true "Package"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/loan-packages [post]
func (h *LoanPackageHandler) Create(c *fiber.Ctx) error {
	var req services.LoanPackageInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pkg, err := h.packageService.Create(c.UserContext(), req)
	if err != nil {
		return packageError(c, err, "Failed to create loan package")
	}
	return response.Created(c, "Loan package created", pkg)
}

// Save upserts a package by id
// @Summary Upsert loan package
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body SavePackageRequest true "Package with optional id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/loan-packages [put]
func (h *LoanPackageHandler) Save(c *fiber.Ctx) error {
	var req SavePackageRequest
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pkg, err := h.packageService.Save(c.UserContext(), req.ID, req.LoanPackageInput)
	if err != nil {
		return packageError(c, err, "Failed to save loan package")
	}
	return response.Success(c, "Loan package saved", pkg)
}

// Update replaces an existing package
// @Summary Update loan package
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param body body services.LoanPackageInput true "Package"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/loan-packages/{id} [put]
func (h *LoanPackageHandler) Update(c *fiber.Ctx) error {
	var req services.LoanPackageInput
	if err := bind(c, &req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pkg, err := h.packageService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return packageError(c, err, "Failed to update loan package")
	}
	return response.Success(c, "Loan package updated", pkg)
}

// Delete removes a package
// @Summary Delete loan package
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/loan-packages/{id} [delete]
func (h *LoanPackageHandler) Delete(c *fiber.Ctx) error {
	if err := h.packageService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return packageError(c, err, "Failed to delete loan package")
	}
	return response.Success(c, "Loan package deleted", nil)
}

func packageError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrLoanPackageNotFound):
		return response.NotFound(c, "Loan package not found")
	case errors.Is(err, domain.ErrPackageLimitReached):
		return response.Conflict(c, "Maximum number of loan packages reached")
	case errors.Is(err, services.ErrLoanPackageNameRequired):
		return response.BadRequest(c, "Name is required")
	default:
		return response.InternalServerError(c, fallback)
	}
}
