package server

import (
	"hosting-storefront/internal/handler"
	mw "hosting-storefront/internal/middleware"
	"hosting-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	catalogHandler  *handler.CatalogHandler
	formsHandler    *handler.FormsHandler
}

func NewServer(
	cartService service.CartService,
	checkoutService service.CheckoutService,
	contactService service.ContactService,
	domainService service.DomainService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		cartHandler:     handler.NewCartHandler(cartService, checkoutService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		catalogHandler:  handler.NewCatalogHandler(),
		formsHandler:    handler.NewFormsHandler(contactService, domainService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/catalog/plans", s.catalogHandler.ListPlans)

	api.POST("/contact", s.formsHandler.SubmitContact)
	api.POST("/domain/check", s.formsHandler.CheckDomain)

	// -------- cart (session-scoped) --------
	cart := api.Group("/cart", mw.CartSession())
	cart.GET("", s.cartHandler.GetCart)
	cart.DELETE("", s.cartHandler.Clear)
	cart.GET("/summary", s.cartHandler.Summary)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PATCH("/items/:index", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:index", s.cartHandler.RemoveItem)

	// -------- checkout --------
	checkout := api.Group("/checkout", mw.CartSession())
	checkout.POST("/create-session", s.checkoutHandler.CreateSession)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
