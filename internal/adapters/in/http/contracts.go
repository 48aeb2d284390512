package http

import (
	"time"

	"campuseats/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error payload returned for every failed
// request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest carries the signup payload. The email is deliberately
// absent: it always comes from the authenticated identity.
type RegisterUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// PlaceOrderItemRequest is one cart line in an order placement.
type PlaceOrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest carries the order placement payload. The ordering user is
// always the authenticated profile, never a field of the body.
type PlaceOrderRequest struct {
	RestaurantID     string                  `json:"restaurantId"`
	DeliveryLocation string                  `json:"deliveryLocation"`
	Items            []PlaceOrderItemRequest `json:"items"`
}

// UpdateOrderRequest carries a partial order update: a target status, a bot
// assignment, or both. At least one field must be present.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
	BotID  *string `json:"botId"`
}

// OrderItemResponse is one line item of an order as returned to clients.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	MenuItemID   string          `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
}

// OrderResponse is an order as returned to clients.
type OrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      int                 `json:"orderNumber"`
	RestaurantID     string              `json:"restaurantId"`
	RestaurantName   string              `json:"restaurantName"`
	UserID           string              `json:"userId"`
	DeliveryLocation string              `json:"deliveryLocation"`
	Status           string              `json:"status"`
	Active           bool                `json:"active"`
	BotID            *string             `json:"botId,omitempty"`
	BotName          string              `json:"botName,omitempty"`
	PlacedAt         time.Time           `json:"placedAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	Items            []OrderItemResponse `json:"items"`
}

// UserOrdersResponse partitions a user's order history into in-flight orders
// and completed ones.
type UserOrdersResponse struct {
	Active  []OrderResponse `json:"active"`
	History []OrderResponse `json:"history"`
}

// MenuItemResponse is one menu entry of a restaurant.
type MenuItemResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// RestaurantResponse is a restaurant with its menu.
type RestaurantResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Menu     []MenuItemResponse `json:"menu"`
}

// ProfileResponse is an account profile as returned to clients.
type ProfileResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	PhoneNumber  string  `json:"phoneNumber,omitempty"`
	Role         string  `json:"role"`
	RestaurantID *string `json:"restaurantId,omitempty"`
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItemResponse{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			Price:        item.Price,
			Quantity:     item.Quantity,
		}
	}

	var botID *string
	if view.BotID != nil {
		s := view.BotID.String()
		botID = &s
	}

	return OrderResponse{
		ID:               view.ID.String(),
		OrderNumber:      view.OrderNumber,
		RestaurantID:     view.RestaurantID.String(),
		RestaurantName:   view.RestaurantName,
		UserID:           view.UserID.String(),
		DeliveryLocation: view.DeliveryLocation,
		Status:           view.Status,
		Active:           view.Active,
		BotID:            botID,
		BotName:          view.BotName,
		PlacedAt:         view.PlacedAt,
		UpdatedAt:        view.UpdatedAt,
		Items:            items,
	}
}

func orderResponsesFromViews(views []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = orderResponseFromView(view)
	}
	return response
}

func restaurantResponseFromView(view queries.RestaurantView) RestaurantResponse {
	menu := make([]MenuItemResponse, len(view.Menu))
	for i, item := range view.Menu {
		menu[i] = MenuItemResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return RestaurantResponse{
		ID:       view.ID.String(),
		Name:     view.Name,
		Location: view.Location,
		Menu:     menu,
	}
}

func profileResponseFromView(view queries.ProfileView) ProfileResponse {
	var restaurantID *string
	if view.RestaurantID != nil {
		s := view.RestaurantID.String()
		restaurantID = &s
	}

	return ProfileResponse{
		ID:           view.ID.String(),
		Email:        view.Email,
		FirstName:    view.FirstName,
		LastName:     view.LastName,
		PhoneNumber:  view.PhoneNumber,
		Role:         view.Role,
		RestaurantID: restaurantID,
	}
}
