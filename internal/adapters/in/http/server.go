// Package http exposes the fastfeet use cases over a JSON HTTP API built on echo.
//
// Authentication is out of scope: the caller identifies itself with the
// X-User-ID and X-User-Role headers, which are trusted as sent.
package http

import (
	"context"
	"net/http"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/notification"

	"github.com/labstack/echo/v4"
)

// CommandHandler runs a use case that returns nothing but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a use case or query that returns a value.
type ResultHandler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateRecipient        CommandHandler[commands.CreateRecipientCommand]
	CreateOrder            CommandHandler[commands.CreateOrderCommand]
	PickUpOrder            CommandHandler[commands.PickUpOrderCommand]
	DeliverOrder           CommandHandler[commands.DeliverOrderCommand]
	ReturnOrder            CommandHandler[commands.ReturnOrderCommand]
	DeleteOrder            CommandHandler[commands.DeleteOrderCommand]
	ReadNotification       ResultHandler[commands.ReadNotificationCommand, *notification.Notification]
	NearbyOrders           ResultHandler[queries.GetNearbyOrdersQuery, []queries.GetNearbyOrdersQueryResponse]
	RecipientNotifications ResultHandler[queries.GetRecipientNotificationsQuery, []queries.GetRecipientNotificationsQueryResponse]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/recipients", s.CreateRecipient)
	v1.GET("/recipients/:id/notifications", s.GetRecipientNotifications)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/nearby", s.GetNearbyOrders)
	v1.PATCH("/orders/:id/pickup", s.PickUpOrder)
	v1.PATCH("/orders/:id/deliver", s.DeliverOrder)
	v1.PATCH("/orders/:id/return", s.ReturnOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)

	v1.PATCH("/notifications/:id/read", s.ReadNotification)
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

type newRecipientRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateRecipient handles POST /api/v1/recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req newRecipientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(id, req.Name, req.Address, req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid recipient data: "+err.Error())
	}

	if err = s.handlers.CreateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

type newOrderRequest struct {
	RecipientID string `json:"recipient_id"`
}

// CreateOrder handles POST /api/v1/orders. Only admins register orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !caller.IsAdmin() {
		return forbidden(ctx, "Only admins can create orders")
	}

	var req newOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient_id")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, recipientID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

// PickUpOrder handles PATCH /api/v1/orders/:id/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, caller, err := orderAndCaller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.PickUpOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type deliverRequest struct {
	AttachmentIDs []string `json:"attachment_ids"`
}

// DeliverOrder handles PATCH /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, caller, err := orderAndCaller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req deliverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	attachmentIDs := make([]kernel.UUID, 0, len(req.AttachmentIDs))
	for _, raw := range req.AttachmentIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid attachment id: "+raw)
		}
		attachmentIDs = append(attachmentIDs, id)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, caller, attachmentIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles PATCH /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, caller, err := orderAndCaller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ReturnOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, caller, err := orderAndCaller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type nearbyOrderResponse struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Status      string           `json:"status"`
	Address     string           `json:"address"`
	Location    locationResponse `json:"location"`
	DistanceKm  float64          `json:"distance_km"`
}

type nearbyParams struct {
	Latitude  float64 `query:"latitude"`
	Longitude float64 `query:"longitude"`
}

// GetNearbyOrders handles GET /api/v1/orders/nearby?latitude=..&longitude=..
func (s *Server) GetNearbyOrders(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var params nearbyParams
	if err = (&echo.DefaultBinder{}).BindQueryParams(ctx, &params); err != nil {
		return badRequest(ctx, "Invalid latitude or longitude")
	}

	query, err := queries.NewGetNearbyOrdersQuery(caller.UserID(), params.Latitude, params.Longitude)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.handlers.NearbyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]nearbyOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = nearbyOrderResponse{
			ID:          o.ID.String(),
			RecipientID: o.RecipientID.String(),
			Status:      o.Status,
			Address:     o.Address,
			Location: locationResponse{
				Latitude:  o.Location.Latitude(),
				Longitude: o.Location.Longitude(),
			},
			DistanceKm: o.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type notificationResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

// GetRecipientNotifications handles GET /api/v1/recipients/:id/notifications.
func (s *Server) GetRecipientNotifications(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	query, err := queries.NewGetRecipientNotificationsQuery(recipientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	notifications, err := s.handlers.RecipientNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = notificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type readNotificationRequest struct {
	RecipientID string `json:"recipient_id"`
}

// ReadNotification handles PATCH /api/v1/notifications/:id/read.
func (s *Server) ReadNotification(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	var req readNotificationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient_id")
	}

	cmd, err := commands.NewReadNotificationCommand(notificationID, recipientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	n, err := s.handlers.ReadNotification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, notificationResponse{
		ID:        n.ID().String(),
		Title:     n.Title(),
		Content:   n.Content(),
		CreatedAt: n.CreatedAt(),
		ReadAt:    n.ReadAt(),
	})
}
