package handler

import (
	"errors"
	"net/http"

	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type FormsHandler struct {
	contactService service.ContactService
	domainService  service.DomainService
}

func NewFormsHandler(contactService service.ContactService, domainService service.DomainService) *FormsHandler {
	return &FormsHandler{
		contactService: contactService,
		domainService:  domainService,
	}
}

func (h *FormsHandler) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.contactService.Submit(ctx, &req); err != nil {
		return formError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func (h *FormsHandler) CheckDomain(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DomainCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.domainService.Check(ctx, req.Domain)
	if err != nil {
		return formError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

func formError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   validationErr.Error(),
		})
	}
	return c.JSON(http.StatusBadGateway, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}
