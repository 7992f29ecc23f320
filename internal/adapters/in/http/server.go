package http

import (
	"errors"
	"log/slog"
	"net/http"

	"kakanin/internal/core/application/usecases/commands"
	"kakanin/internal/core/application/usecases/queries"
	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/core/domain/model/order"
	"kakanin/internal/core/domain/model/user"
	"kakanin/internal/generated/servers"
	"kakanin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	authenticateHandler    queries.AuthenticateQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	authenticateHandler queries.AuthenticateQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		authenticateHandler:      authenticateHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// GetCatalog handles GET /api/v1/catalog - the choices the order form offers.
func (s *Server) GetCatalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Catalog{
		Delicacies:     toChoices(order.Delicacies()),
		ContainerSizes: toChoices(order.ContainerSizes()),
		Statuses:       toChoices(order.Statuses()),
	})
}

// Login handles POST /api/v1/login - checks the administrator credentials.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	query := queries.NewAuthenticateQuery(body.Username, body.Password)
	if err := s.authenticateHandler.Handle(ctx.Request().Context(), query); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders - the order management list in the
// order the orders were recorded.
func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// CreateOrder handles POST /api/v1/orders - records a new Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	input := commands.CreateOrderInput{
		BuyerName:     body.BuyerName,
		ContactNumber: body.ContactNumber,
		Address:       body.Address,
		Delicacy:      body.Delicacy,
		Quantity:      body.Quantity,
		ContainerSize: body.ContainerSize,
		PickupPlace:   body.PickupPlace,
		PickupDate:    body.PickupDate.Format(openapi_types.DateFormat),
	}
	if body.SpecialRequest != nil {
		input.SpecialRequest = *body.SpecialRequest
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), input)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// A missing administrator is a setup problem, not a missing resource.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.internalError(ctx, err)
		}
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrderHistory handles GET /api/v1/orders/history - every order sorted by
// pickup date, earliest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	views, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderHistoryQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrder handles GET /api/v1/orders/{orderId} - the order tracking view.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateBasicAuth is a middleware.BasicAuthValidator backed by the
// authenticate query.
func (s *Server) ValidateBasicAuth(username, password string, ctx echo.Context) (bool, error) {
	query := queries.NewAuthenticateQuery(username, password)
	err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, user.ErrInvalidCredentials):
		return false, nil
	default:
		return false, err
	}
}

type choice interface {
	Code() string
	String() string
}

func toChoices[T choice](values []T) []servers.Choice {
	response := make([]servers.Choice, len(values))
	for i, v := range values {
		response[i] = servers.Choice{Code: v.Code(), Name: v.String()}
	}
	return response
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return response
}

func toOrder(view queries.OrderView) servers.Order {
	return servers.Order{
		Id: view.ID.Bytes(),
		Buyer: servers.Buyer{
			Id:            view.Buyer.ID.Bytes(),
			Name:          view.Buyer.Name,
			ContactNumber: view.Buyer.ContactNumber,
			Address:       view.Buyer.Address,
		},
		Delicacy:       view.Delicacy.String(),
		Quantity:       view.Quantity,
		ContainerSize:  view.ContainerSize.String(),
		SpecialRequest: view.SpecialRequest,
		PickupPlace:    view.PickupPlace,
		PickupDate:     openapi_types.Date{Time: view.PickupDate.Time()},
		Status:         servers.OrderStatus(view.Status.String()),
	}
}
