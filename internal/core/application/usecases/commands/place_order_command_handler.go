package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/order"
	"feedback/internal/core/domain/services"
	"feedback/internal/core/ports"
	"feedback/internal/pkg/errs"
)

// PlaceOrderCommandHandler turns a checkout into a confirmed order plus the
// available delivery task, atomically. All cart lines must reference active
// listings of the same merchant; the fulfillment planner derives the task's
// pickup priority from the earliest best-before time in the cart.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	notifier   ports.Notifier
	planner    services.FulfillmentPlanner
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for checkout.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		planner:    services.NewFulfillmentPlanner(),
		now:        time.Now,
	}
}

// Handle loads and checks the cart's listings, builds the order and its
// delivery task, and persists both in one transaction.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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

	listings, items, err := h.loadCart(ctx, uow, command.Cart())
	if err != nil {
		return err
	}

	m, err := uow.MerchantRepository().Get(ctx, listings[0].MerchantID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		items,
		command.PaymentMethod(),
		command.PickupTime(),
	)
	if err != nil {
		return err
	}

	t, err := h.planner.PlanOrderDelivery(
		command.TaskID(),
		o, m, listings,
		command.RecipientName(),
		command.RecipientAddress(),
		command.RecipientPhone(),
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.Publish(
		ctx,
		o.CustomerID().String(),
		fmt.Sprintf("Order confirmed. Pickup from %s at %s.", m.BusinessName(), o.PickupTime()),
		ports.SeveritySuccess,
	)
}

// loadCart resolves every cart line into its listing and an order item.
// All listings must be active and belong to one merchant.
func (h PlaceOrderCommandHandler) loadCart(
	ctx context.Context,
	uow CheckoutUoW,
	cart []CartLine,
) ([]*listing.Listing, []order.Item, error) {
	listingRepo := uow.ListingRepository()

	listings := make([]*listing.Listing, 0, len(cart))
	items := make([]order.Item, 0, len(cart))

	for _, line := range cart {
		l, err := listingRepo.Get(ctx, line.ListingID)
		if err != nil {
			return nil, nil, err
		}

		if l.Status() != listing.Active {
			return nil, nil, errs.NewInvalidStateErrorWithCause(
				"listing status",
				fmt.Errorf("listing %s is %s and cannot be ordered", l.ID(), l.Status()),
			)
		}

		if len(listings) > 0 && !l.MerchantID().IsEqual(listings[0].MerchantID()) {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause(
				"cart",
				errors.New("cart mixes listings from different merchants"),
			)
		}

		item, err := order.NewItem(line.ListingID.String(), line.Name, line.Price)
		if err != nil {
			return nil, nil, err
		}

		listings = append(listings, l)
		items = append(items, item)
	}

	return listings, items, nil
}
