// Package http is the inbound REST adapter. It translates requests into
// commands and queries, enforces the access policy per route, and maps
// domain errors onto HTTP statuses. Authorization always works from the
// authenticated profile; acting-user references in request bodies are
// ignored by construction.
package http

import (
	"context"
	"net/http"
	"strconv"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/services"
	"campuseats/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// OrderPlacer places an order and returns the assigned order number.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (int, error)
}

// OrderAdvancer applies a status transition and/or bot assignment.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error
}

// ProfileRegistrar registers or refreshes an account profile.
type ProfileRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterProfileCommand) error
}

// RestaurantQueueReader serves a restaurant's active order queue.
type RestaurantQueueReader interface {
	Handle(ctx context.Context, query queries.GetRestaurantQueueQuery) ([]queries.OrderView, error)
}

// UserOrdersReader serves a user's order history.
type UserOrdersReader interface {
	Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error)
}

// OrderByNumberReader serves a single order by its public number.
type OrderByNumberReader interface {
	Handle(ctx context.Context, query queries.GetOrderByNumberQuery) (queries.OrderView, error)
}

// RestaurantCatalogReader serves the restaurant catalog with menus.
type RestaurantCatalogReader interface {
	Handle(ctx context.Context, query queries.ListRestaurantsQuery) ([]queries.RestaurantView, error)
}

// ProfileByEmailReader serves a profile looked up by email.
type ProfileByEmailReader interface {
	Handle(ctx context.Context, query queries.GetProfileByEmailQuery) (queries.ProfileView, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrder      OrderPlacer
	advanceOrder    OrderAdvancer
	registerProfile ProfileRegistrar

	restaurantQueue RestaurantQueueReader
	userOrders      UserOrdersReader
	orderByNumber   OrderByNumberReader
	catalog         RestaurantCatalogReader
	profileByEmail  ProfileByEmailReader

	// orders backs the authorization lookups on the order routes: the
	// policy needs the aggregate's owner and restaurant before the view
	// (or the mutation) is touched.
	orders ports.OrderRepository
	policy services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrder OrderPlacer,
	advanceOrder OrderAdvancer,
	registerProfile ProfileRegistrar,
	restaurantQueue RestaurantQueueReader,
	userOrders UserOrdersReader,
	orderByNumber OrderByNumberReader,
	catalog RestaurantCatalogReader,
	profileByEmail ProfileByEmailReader,
	orders ports.OrderRepository,
	policy services.AccessPolicy,
) *Server {
	return &Server{
		placeOrder:      placeOrder,
		advanceOrder:    advanceOrder,
		registerProfile: registerProfile,
		restaurantQueue: restaurantQueue,
		userOrders:      userOrders,
		orderByNumber:   orderByNumber,
		catalog:         catalog,
		profileByEmail:  profileByEmail,
		orders:          orders,
		policy:          policy,
	}
}

// RegisterRoutes mounts all routes on the echo instance. The health and
// catalog endpoints are public; everything else sits behind the auth
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.GetHealth)
	e.GET("/restaurants", s.GetRestaurants)

	authed := e.Group("", auth)
	authed.POST("/users", s.RegisterUser)
	authed.GET("/users", s.GetUserByEmail)
	authed.POST("/orders", s.PlaceOrder)
	authed.GET("/orders", s.GetUserOrders)
	authed.GET("/orders/:orderNumber", s.GetOrderByNumber)
	authed.PATCH("/orders/id/:orderId", s.UpdateOrder)
	authed.GET("/restaurants/:restaurantId/orders", s.GetRestaurantQueue)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetRestaurants handles GET /restaurants - the public storefront catalog,
// sorted by name.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	views, err := s.catalog.Handle(ctx.Request().Context(), queries.NewListRestaurantsQuery())
	if err != nil {
		return respondWithError(ctx, err)
	}

	response := make([]RestaurantResponse, len(views))
	for i, view := range views {
		response[i] = restaurantResponseFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterUser handles POST /users - signup or profile refresh for the
// authenticated identity. The email is the identity's verified email; the
// body only supplies names and phone.
func (s *Server) RegisterUser(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterProfileCommand(
		auth.Identity.Email,
		request.FirstName,
		request.LastName,
		request.PhoneNumber,
	)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	requestCtx := ctx.Request().Context()
	if err = s.registerProfile.Handle(requestCtx, cmd); err != nil {
		return respondWithError(ctx, err)
	}

	query, err := queries.NewGetProfileByEmailQuery(auth.Identity.Email)
	if err != nil {
		return respondWithError(ctx, err)
	}
	view, err := s.profileByEmail.Handle(requestCtx, query)
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, profileResponseFromView(view))
}

// GetUserByEmail handles GET /users?email=X - profile lookup, permitted to
// the profile owner and admins.
func (s *Server) GetUserByEmail(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	email := ctx.QueryParam("email")
	if email == "" {
		return respondBadRequest(ctx, "email query parameter is required")
	}

	if err := s.policy.CanViewProfile(auth.Profile, email); err != nil {
		return respondWithError(ctx, err)
	}

	query, err := queries.NewGetProfileByEmailQuery(email)
	if err != nil {
		return respondWithError(ctx, err)
	}
	view, err := s.profileByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileResponseFromView(view))
}

// PlaceOrder handles POST /orders - places an order for the authenticated
// customer and returns the created order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	if err := s.policy.CanCreateOrder(auth.Profile); err != nil {
		return respondWithError(ctx, err)
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	// Lines with no menu item or a non-positive quantity are dropped rather
	// than rejected; an empty cart after filtering is the client's error.
	selections := make([]commands.ItemSelection, 0, len(request.Items))
	for _, item := range request.Items {
		if item.MenuItemID == "" || item.Quantity <= 0 {
			continue
		}
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return respondBadRequest(ctx, "invalid menu item id")
		}
		selection, itemErr := commands.NewItemSelection(menuItemID, item.Quantity)
		if itemErr != nil {
			return respondBadRequest(ctx, itemErr.Error())
		}
		selections = append(selections, selection)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		auth.Profile.ID(),
		restaurantID,
		request.DeliveryLocation,
		selections,
	)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	requestCtx := ctx.Request().Context()
	orderNumber, err := s.placeOrder.Handle(requestCtx, cmd)
	if err != nil {
		return respondWithError(ctx, err)
	}

	view, err := s.fetchOrderView(requestCtx, orderNumber)
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromView(view))
}

// GetUserOrders handles GET /orders?userId=X - a user's order history,
// newest first. Non-admins may only request their own.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	rawUserID := ctx.QueryParam("userId")
	if rawUserID == "" {
		return respondBadRequest(ctx, "userId query parameter is required")
	}
	userID, err := kernel.UUIDFromString(rawUserID)
	if err != nil {
		return respondBadRequest(ctx, "invalid user id")
	}

	if err = s.policy.CanViewUserOrders(auth.Profile, userID); err != nil {
		return respondWithError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondWithError(ctx, err)
	}
	views, err := s.userOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondWithError(ctx, err)
	}

	response := UserOrdersResponse{
		Active:  []OrderResponse{},
		History: []OrderResponse{},
	}
	for _, view := range views {
		if view.Active {
			response.Active = append(response.Active, orderResponseFromView(view))
		} else {
			response.History = append(response.History, orderResponseFromView(view))
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /orders/:orderNumber - a single order looked
// up by its public number, visible to its owner, its restaurant's staff, and
// admins.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	orderNumber, err := strconv.Atoi(ctx.Param("orderNumber"))
	if err != nil {
		return respondBadRequest(ctx, "order number must be numeric")
	}

	requestCtx := ctx.Request().Context()

	aggregate, err := s.orders.GetByNumber(requestCtx, orderNumber)
	if err != nil {
		return respondWithError(ctx, err)
	}
	if err = s.policy.CanViewOrder(auth.Profile, aggregate); err != nil {
		return respondWithError(ctx, err)
	}

	view, err := s.fetchOrderView(requestCtx, orderNumber)
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// UpdateOrder handles PATCH /orders/id/:orderId - advances the status and/or
// assigns a delivery bot. Permitted to admins and the order's restaurant
// staff.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	requestCtx := ctx.Request().Context()

	aggregate, err := s.orders.Get(requestCtx, orderID)
	if err != nil {
		return respondWithError(ctx, err)
	}
	if err = s.policy.CanManageOrder(auth.Profile, aggregate); err != nil {
		return respondWithError(ctx, err)
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var targetStatus *order.Status
	if request.Status != nil {
		status, statusErr := order.StatusFromString(*request.Status)
		if statusErr != nil {
			return respondBadRequest(ctx, statusErr.Error())
		}
		targetStatus = &status
	}

	var botID *kernel.UUID
	if request.BotID != nil {
		id, botErr := kernel.UUIDFromString(*request.BotID)
		if botErr != nil {
			return respondBadRequest(ctx, "invalid bot id")
		}
		botID = &id
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, targetStatus, botID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.advanceOrder.Handle(requestCtx, cmd); err != nil {
		return respondWithError(ctx, err)
	}

	view, err := s.fetchOrderView(requestCtx, aggregate.OrderNumber())
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetRestaurantQueue handles GET /restaurants/:restaurantId/orders - the
// restaurant's active orders, oldest first. Permitted to admins and the
// restaurant's own staff.
func (s *Server) GetRestaurantQueue(ctx echo.Context) error {
	auth, ok := authFromContext(ctx)
	if !ok {
		return respondWithError(ctx, errUnauthenticated())
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	if err = s.policy.CanManageRestaurantQueue(auth.Profile, restaurantID); err != nil {
		return respondWithError(ctx, err)
	}

	query, err := queries.NewGetRestaurantQueueQuery(restaurantID)
	if err != nil {
		return respondWithError(ctx, err)
	}
	views, err := s.restaurantQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondWithError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))
}

func (s *Server) fetchOrderView(ctx context.Context, orderNumber int) (queries.OrderView, error) {
	query, err := queries.NewGetOrderByNumberQuery(orderNumber)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.orderByNumber.Handle(ctx, query)
}
