// Package http exposes the workflow over a REST surface.
// Routes are grouped by actor: admin verification and moderation, merchant
// listings, driver task lifecycle, and customer checkout. The acting user is
// identified by the X-User-ID header; authentication itself is handled
// upstream.
package http

import (
	"context"
	"fmt"
	"net/http"

	"feedback/internal/core/application/usecases/commands"
	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/core/ports"
	"feedback/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// userIDHeader carries the acting user's identifier.
const userIDHeader = "X-User-ID"

// UserFinder resolves a single account for role checks.
// Satisfied by queries.GetUserQueryHandler.
type UserFinder interface {
	Handle(ctx context.Context, query queries.GetUserQuery) (queries.GetUserQueryResponse, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	approveMerchantHandler  commands.ApproveMerchantCommandHandler
	rejectMerchantHandler   commands.RejectMerchantCommandHandler
	createListingHandler    commands.CreateListingCommandHandler
	flagListingHandler      commands.MarkListingNonCompliantCommandHandler
	removeListingHandler    commands.RemoveListingCommandHandler
	setUserRoleHandler      commands.SetUserRoleCommandHandler
	setUserActiveHandler    commands.SetUserActiveCommandHandler
	acceptTaskHandler       commands.AcceptTaskCommandHandler
	startPickupHandler      commands.StartPickupCommandHandler
	confirmPickupHandler    commands.ConfirmPickupCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	submitRatingHandler     commands.SubmitRatingCommandHandler
	claimListingHandler     commands.ClaimListingCommandHandler

	// Query handlers
	getMerchantsHandler      queries.GetMerchantsByStatusQueryHandler
	getListingsHandler       queries.GetListingsQueryHandler
	getAvailableTasksHandler queries.GetAvailableTasksQueryHandler
	getUsersHandler          queries.GetUsersQueryHandler
	getUserHandler           UserFinder

	notifier  ports.Notifier
	taskCache queries.AvailableTasksCache
	validate  *validator.Validate
}

// NewServer creates an HTTP server wired to the given use case handlers.
// taskCache may be nil when no cache is configured.
func NewServer(
	approveMerchantHandler commands.ApproveMerchantCommandHandler,
	rejectMerchantHandler commands.RejectMerchantCommandHandler,
	createListingHandler commands.CreateListingCommandHandler,
	flagListingHandler commands.MarkListingNonCompliantCommandHandler,
	removeListingHandler commands.RemoveListingCommandHandler,
	setUserRoleHandler commands.SetUserRoleCommandHandler,
	setUserActiveHandler commands.SetUserActiveCommandHandler,
	acceptTaskHandler commands.AcceptTaskCommandHandler,
	startPickupHandler commands.StartPickupCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	claimListingHandler commands.ClaimListingCommandHandler,
	getMerchantsHandler queries.GetMerchantsByStatusQueryHandler,
	getListingsHandler queries.GetListingsQueryHandler,
	getAvailableTasksHandler queries.GetAvailableTasksQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	getUserHandler UserFinder,
	notifier ports.Notifier,
	taskCache queries.AvailableTasksCache,
) *Server {
	return &Server{
		approveMerchantHandler:   approveMerchantHandler,
		rejectMerchantHandler:    rejectMerchantHandler,
		createListingHandler:     createListingHandler,
		flagListingHandler:       flagListingHandler,
		removeListingHandler:     removeListingHandler,
		setUserRoleHandler:       setUserRoleHandler,
		setUserActiveHandler:     setUserActiveHandler,
		acceptTaskHandler:        acceptTaskHandler,
		startPickupHandler:       startPickupHandler,
		confirmPickupHandler:     confirmPickupHandler,
		completeDeliveryHandler:  completeDeliveryHandler,
		placeOrderHandler:        placeOrderHandler,
		submitRatingHandler:      submitRatingHandler,
		claimListingHandler:      claimListingHandler,
		getMerchantsHandler:      getMerchantsHandler,
		getListingsHandler:       getListingsHandler,
		getAvailableTasksHandler: getAvailableTasksHandler,
		getUsersHandler:          getUsersHandler,
		getUserHandler:           getUserHandler,
		notifier:                 notifier,
		taskCache:                taskCache,
		validate:                 validator.New(),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/admin")
	admin.GET("/merchants", s.GetMerchants)
	admin.POST("/merchants/:id/approve", s.ApproveMerchant)
	admin.POST("/merchants/:id/reject", s.RejectMerchant)
	admin.GET("/listings", s.GetListings)
	admin.POST("/listings/:id/flag", s.FlagListing)
	admin.DELETE("/listings/:id", s.RemoveListing)
	admin.GET("/users", s.GetUsers)
	admin.PUT("/users/:id/role", s.SetUserRole)
	admin.PUT("/users/:id/active", s.SetUserActive)

	merchants := e.Group("/api/merchant")
	merchants.POST("/listings", s.CreateListing)

	driver := e.Group("/api/driver")
	driver.GET("/tasks", s.GetAvailableTasks)
	driver.POST("/tasks/:id/accept", s.AcceptTask)
	driver.POST("/tasks/:id/start-pickup", s.StartPickup)
	driver.POST("/tasks/:id/confirm-pickup", s.ConfirmPickup)
	driver.POST("/tasks/:id/complete", s.CompleteDelivery)

	customer := e.Group("/api/customer")
	customer.POST("/orders", s.PlaceOrder)
	customer.POST("/orders/:id/rating", s.SubmitRating)

	ngo := e.Group("/api/ngo")
	ngo.POST("/claims", s.ClaimListing)

	e.GET("/api/notifications", s.GetNotifications)
}

// GetMerchants handles GET /api/admin/merchants?status= - lists merchant
// applications by verification status.
func (s *Server) GetMerchants(ctx echo.Context) error {
	status, err := merchant.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMerchantsByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	merchants, err := s.getMerchantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, merchants)
}

// ApproveMerchant handles POST /api/admin/merchants/:id/approve.
func (s *Server) ApproveMerchant(ctx echo.Context) error {
	merchantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveMerchantCommand(merchantID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approveMerchantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectMerchant handles POST /api/admin/merchants/:id/reject.
func (s *Server) RejectMerchant(ctx echo.Context) error {
	merchantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req rejectMerchantRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectMerchantCommand(merchantID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectMerchantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetListings handles GET /api/admin/listings?status=&nonCompliant= - lists
// the catalog for moderation. status is optional; nonCompliant=true narrows
// to flagged listings.
func (s *Server) GetListings(ctx echo.Context) error {
	status := listing.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := listing.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	query, err := queries.NewGetListingsQuery(status, ctx.QueryParam("nonCompliant") == "true")
	if err != nil {
		return respondError(ctx, err)
	}

	listings, err := s.getListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listings)
}

// FlagListing handles POST /api/admin/listings/:id/flag - marks a listing
// non-compliant with the reported issues.
func (s *Server) FlagListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req flagListingRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkListingNonCompliantCommand(listingID, req.Issues)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.flagListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveListing handles DELETE /api/admin/listings/:id.
func (s *Server) RemoveListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveListingCommand(listingID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/admin/users?role=&search=.
func (s *Server) GetUsers(ctx echo.Context) error {
	role := user.RoleUnknown
	if raw := ctx.QueryParam("role"); raw != "" {
		parsed, err := user.RoleFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		role = parsed
	}

	query, err := queries.NewGetUsersQuery(role, ctx.QueryParam("search"))
	if err != nil {
		return respondError(ctx, err)
	}

	users, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, users)
}

// SetUserRole handles PUT /api/admin/users/:id/role.
func (s *Server) SetUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req setUserRoleRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetUserRoleCommand(userID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setUserRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetUserActive handles PUT /api/admin/users/:id/active - suspends or
// reinstates a user account.
func (s *Server) SetUserActive(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req setUserActiveRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetUserActiveCommand(userID, *req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setUserActiveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateListing handles POST /api/merchant/listings - posts a surplus-food
// listing for the acting merchant.
func (s *Server) CreateListing(ctx echo.Context) error {
	merchantID, err := s.actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req createListingRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(),
		merchantID,
		req.Title,
		req.Description,
		req.Quantity,
		req.Images,
		req.BestBefore,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ListingID().String()})
}

// GetAvailableTasks handles GET /api/driver/tasks - the shared task board.
func (s *Server) GetAvailableTasks(ctx echo.Context) error {
	query := queries.NewGetAvailableTasksQuery()

	tasks, err := s.getAvailableTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tasks)
}

// AcceptTask handles POST /api/driver/tasks/:id/accept - claims a task for
// the acting driver. A lost race against another driver yields 409.
func (s *Server) AcceptTask(ctx echo.Context) error {
	taskID, driverID, err := s.taskActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptTaskCommand(taskID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateTaskBoard(ctx.Request().Context())
	return ctx.NoContent(http.StatusNoContent)
}

// StartPickup handles POST /api/driver/tasks/:id/start-pickup.
func (s *Server) StartPickup(ctx echo.Context) error {
	taskID, driverID, err := s.taskActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartPickupCommand(taskID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/driver/tasks/:id/confirm-pickup - records
// the pickup proof and moves the task to delivering.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	taskID, driverID, err := s.taskActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req confirmPickupRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmPickupCommand(taskID, driverID, req.Proof)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/driver/tasks/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	taskID, driverID, err := s.taskActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(taskID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/customer/orders - checks out the cart and
// schedules the delivery task.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := s.actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req placeOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cart := make([]commands.CartLine, 0, len(req.Cart))
	for _, line := range req.Cart {
		listingID, lineErr := kernel.UUIDFromString(line.ListingID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		cart = append(cart, commands.CartLine{
			ListingID: listingID,
			Name:      line.Name,
			Price:     line.Price,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		customerID,
		cart,
		req.PaymentMethod,
		req.PickupTime,
		req.RecipientName,
		req.RecipientAddress,
		req.RecipientPhone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateTaskBoard(ctx.Request().Context())
	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.OrderID().String()})
}

// SubmitRating handles POST /api/customer/orders/:id/rating.
func (s *Server) SubmitRating(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req submitRatingRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSubmitRatingCommand(orderID, req.Rating, req.Feedback)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimListing handles POST /api/ngo/claims - claims a listing as a donation
// and schedules its pickup task.
func (s *Server) ClaimListing(ctx echo.Context) error {
	var req claimListingRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClaimListingCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		listingID,
		req.NgoName,
		req.NgoAddress,
		req.NgoPhone,
		req.PickupTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.claimListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.invalidateTaskBoard(ctx.Request().Context())
	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ClaimID().String()})
}

// GetNotifications handles GET /api/notifications - returns the acting
// user's notification feed. Only admins may pass an audience query param to
// read a feed other than their own, such as the shared "admin" feed.
func (s *Server) GetNotifications(ctx echo.Context) error {
	audience := ctx.Request().Header.Get(userIDHeader)
	if audience == "" {
		return badRequest(ctx, userIDHeader+" header is required")
	}

	if override := ctx.QueryParam("audience"); override != "" && override != audience {
		if err := s.requireAdmin(ctx); err != nil {
			return respondError(ctx, err)
		}
		audience = override
	}

	feed, err := s.notifier.Feed(ctx.Request().Context(), audience)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, feed)
}

// bind decodes and validates a request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

// actorID extracts the acting user's ID from the request header.
func (s *Server) actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

// requireAdmin verifies the acting user holds the admin role.
func (s *Server) requireAdmin(ctx echo.Context) error {
	actor, err := s.actorID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(actor)
	if err != nil {
		return err
	}

	account, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	if account.Role != user.RoleAdmin.String() {
		return errs.NewForbiddenErrorWithCause(
			"actor",
			fmt.Errorf("user %s is not an admin", actor),
		)
	}

	return nil
}

// taskActor extracts the task ID from the path and the driver ID from the
// header.
func (s *Server) taskActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	driverID, err := s.actorID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return taskID, driverID, nil
}

// invalidateTaskBoard drops the cached board after a write that changes it.
// Cache failures are not surfaced: the entry expires on its own shortly.
func (s *Server) invalidateTaskBoard(ctx context.Context) {
	if s.taskCache == nil {
		return
	}
	_ = s.taskCache.Invalidate(ctx)
}
