package handler

import (
	"errors"
	"net/http"

	"hosting-storefront/internal/client"
	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/middleware"
	"hosting-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.checkoutService.CreateSession(ctx, middleware.SessionID(c), &req)
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// checkoutError maps the three failure classes: invalid input and
// business-rule violations come back 400 with the specific message, an
// application-level billing rejection carries the server's error string
// verbatim, and a connectivity failure gets the generic message so the
// user can tell the two apart.
func checkoutError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	}

	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrHostingNeedsDomain),
		errors.Is(err, service.ErrDomainOnlyCheckout):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": apiErr.Message})
	}
	if errors.Is(err, client.ErrBillingUnreachable) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "unable to reach payment processor"})
	}

	return err
}
