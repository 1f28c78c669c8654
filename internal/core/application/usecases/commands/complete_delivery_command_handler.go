package commands

import (
	"context"

	"feedback/internal/core/domain/model/task"
	"feedback/internal/core/ports"
)

// CompleteDeliveryCommandHandler closes out a delivery task. For customer
// deliveries the linked order is fulfilled in the same transaction, so a
// failure on either side rolls back both. Donation pickups have no order
// behind them; completing the task is the whole operation.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle completes the task and, for customer deliveries, fulfills the
// linked order atomically.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	taskRepo := uow.TaskRepository()

	t, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}

	if err = t.Complete(command.DriverID()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	audience := command.DriverID().String()
	message := "Donation delivered to " + t.Recipient().Name() + ". Thank you!"

	if t.Recipient().Kind() == task.KindCustomer {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.Get(ctx, t.OrderID())
		if err != nil {
			return err
		}

		if err = o.Fulfill(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		audience = o.CustomerID().String()
		message = "Your order has been delivered. Enjoy your food!"
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(ctx, audience, message, ports.SeveritySuccess)
}
