package handler

import (
	"net/http"

	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/pricing"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListPlans(c echo.Context) error {
	listings := make([]dto.PlanListing, 0, len(pricing.Plans()))
	for _, plan := range pricing.Plans() {
		listing := dto.PlanListing{Plan: string(plan)}
		for _, term := range pricing.Terms() {
			entry, err := pricing.PriceOf(plan, term)
			if err != nil {
				return err
			}
			listing.Prices = append(listing.Prices, dto.PlanPrice{
				Term:     string(term),
				Months:   entry.Months,
				PerMonth: entry.PerMonth.StringFixed(2),
				PriceID:  entry.PriceID,
			})
		}
		listings = append(listings, listing)
	}

	return c.JSON(http.StatusOK, listings)
}
