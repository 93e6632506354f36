package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/middleware"
	"hosting-storefront/internal/model"
	"hosting-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.GetCart(ctx, middleware.SessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{Items: cart.Items()})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item := model.CartItem{
		ID:          req.ID,
		Type:        model.ItemType(req.Type),
		Quantity:    req.Quantity,
		Plan:        model.Plan(req.Plan),
		Term:        model.Term(req.Term),
		Trial:       req.Trial,
		Domain:      req.Domain,
		ProductCode: req.ProductCode,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Interval:    req.Interval,
		Currency:    req.Currency,
	}

	result, err := h.cartService.AddItem(ctx, middleware.SessionID(c), item, req.Replace)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := http.StatusOK
	if result.Outcome == service.OutcomeAdded {
		status = http.StatusCreated
	}
	return c.JSON(status, dto.AddItemResponse{
		Outcome: string(result.Outcome),
		Cart:    result.Cart.Items(),
	})
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item index")
	}

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	cart, err := h.cartService.UpdateQuantity(ctx, middleware.SessionID(c), index, req.Quantity)
	if errors.Is(err, service.ErrInvalidIndex) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{Items: cart.Items()})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item index")
	}

	cart, err := h.cartService.RemoveItem(ctx, middleware.SessionID(c), index)
	if errors.Is(err, service.ErrInvalidIndex) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{Items: cart.Items()})
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, middleware.SessionID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.checkoutService.Summary(ctx, middleware.SessionID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
