package commands

import (
	"context"
	"fmt"

	"feedback/internal/core/ports"
)

// SubmitRatingCommandHandler stores a customer's one-time rating on a
// fulfilled order and tells the admins a new rating arrived.
type SubmitRatingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the order, applies the rating and persists it.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, command SubmitRatingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.SubmitRating(command.Rating(), command.Feedback()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		"admin",
		fmt.Sprintf("New %d-star rating received on order %s.", o.Rating(), o.ID()),
		ports.SeverityInfo,
	)
}
