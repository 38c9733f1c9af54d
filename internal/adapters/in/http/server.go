// Package http exposes the order tracking API over REST. Handlers translate
// JSON requests into commands and queries and map application errors onto
// the API's error contract.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	CreateBox      commands.CreateBoxCommandHandler
	UpdateBox      commands.UpdateBoxCommandHandler
	DeleteBox      commands.DeleteBoxCommandHandler
	CreateShipment commands.CreateShipmentCommandHandler
	RegisterUser   commands.RegisterUserCommandHandler
	ObtainToken    commands.ObtainTokenCommandHandler

	GetOrders    queries.GetOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	GetBoxes     queries.GetBoxesQueryHandler
	GetBox       queries.GetBoxQueryHandler
	GetShipments queries.GetShipmentsQueryHandler
	GetShipment  queries.GetShipmentQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires the API routes. Registration and login stay outside
// the authenticated group.
func (s *Server) RegisterRoutes(e *echo.Echo, auth AuthMiddleware) {
	e.GET("/health", s.Health)

	e.POST("/api/v1/users/register", s.Register)
	e.POST("/api/v1/users/token", s.Login)

	api := e.Group("/api/v1", auth.Authenticate)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/boxes", s.GetBoxes)
	api.POST("/boxes", s.CreateBox)
	api.GET("/boxes/:id", s.GetBox)
	api.PUT("/boxes/:id", s.UpdateBox)
	api.PATCH("/boxes/:id", s.UpdateBox)
	api.DELETE("/boxes/:id", s.DeleteBox)

	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:id", s.GetShipment)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/users/register. The access token is issued
// immediately, so the response already contains it.
func (s *Server) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Username, req.Name, string(req.Email), req.Password, req.CompanyID)
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, registeredUser(user))
}

// Login handles POST /api/v1/users/token.
func (s *Server) Login(c echo.Context) error {
	var req obtainTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	cmd, err := commands.NewObtainTokenCommand(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.handlers.ObtainToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	query, err := queries.NewGetOrdersQuery(actorFrom(c), pageParam(c), pageSizeParam(c))
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	return s.serveOrder(c, http.StatusOK, id)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	cmd, err := commands.NewCreateOrderCommand(
		actorFrom(c), req.RecipientID, req.ClientTracking, req.RecipientOrderNum, req.details())
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, orderBody(created))
}

// UpdateOrder handles PUT and PATCH /api/v1/orders/:id. Both are partial
// updates: absent fields keep their stored values. The response is served
// from the read model so the derived status and box list stay accurate.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	cmd, err := commands.NewUpdateOrderCommand(actorFrom(c), id, req.patch())
	if err != nil {
		return respondError(c, err)
	}

	if _, err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return s.serveOrder(c, http.StatusOK, id)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	cmd, err := commands.NewDeleteOrderCommand(actorFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBoxes handles GET /api/v1/boxes.
func (s *Server) GetBoxes(c echo.Context) error {
	query, err := queries.NewGetBoxesQuery(actorFrom(c), pageParam(c), pageSizeParam(c))
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.handlers.GetBoxes.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetBox handles GET /api/v1/boxes/:id.
func (s *Server) GetBox(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	query, err := queries.NewGetBoxQuery(actorFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.GetBox.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(c echo.Context) error {
	var req createBoxRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	dims, err := req.dimensions()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreateBoxCommand(
		actorFrom(c), req.OrderID, req.ClientCode, req.Code, dims, req.ContentDescription)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.CreateBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, boxBody(created))
}

// UpdateBox handles PUT and PATCH /api/v1/boxes/:id.
func (s *Server) UpdateBox(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	var req updateBoxRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	patch, err := req.patch()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateBoxCommand(actorFrom(c), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.UpdateBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, boxBody(updated))
}

// DeleteBox handles DELETE /api/v1/boxes/:id.
func (s *Server) DeleteBox(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	cmd, err := commands.NewDeleteBoxCommand(actorFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteBox.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(c echo.Context) error {
	query, err := queries.NewGetShipmentsQuery(actorFrom(c), pageParam(c), pageSizeParam(c))
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.handlers.GetShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{Detail: "Not found."})
	}

	query, err := queries.NewGetShipmentQuery(actorFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body."})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		actorFrom(c), req.WaybillNum, req.WaybillDate.Time, req.Comment, req.BoxIDs)
	if err != nil {
		return respondError(c, err)
	}

	created, boxes, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, shipmentBody(created, boxes))
}

// serveOrder responds with the full order detail from the read model.
func (s *Server) serveOrder(c echo.Context, status int, orderID uint64) error {
	query, err := queries.NewGetOrderQuery(actorFrom(c), orderID)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(status, resp)
}

// idParam parses the :id path segment. Malformed identifiers read as
// missing objects.
func idParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func pageParam(c echo.Context) int {
	return intQueryParam(c, "page")
}

func pageSizeParam(c echo.Context) int {
	return intQueryParam(c, "page_size")
}

// intQueryParam returns 0 for absent or malformed values; the query
// constructors substitute their defaults.
func intQueryParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
