package services

import (
	"errors"
	"fmt"
	"time"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/core/domain/model/order"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/pkg/errs"
)

// ErrNothingToDeliver is returned when a plan is requested without any food
// items behind it, so no delivery task can be produced.
var ErrNothingToDeliver = errors.New("nothing to deliver")

// Urgency thresholds for pickup priority, measured against the earliest
// best-before time of the food in the task.
const (
	highPriorityWindow   = 4 * time.Hour
	mediumPriorityWindow = 24 * time.Hour
)

// FulfillmentPlanner is a domain service that turns a confirmed order or a
// claimed donation into the delivery task drivers see on their board.
//
// Business rules:
//   - Only approved merchants can be a pickup stop
//   - Orders must be confirmed and not yet fulfilled
//   - Pickup priority follows the earliest best-before time of the food:
//     within 4 hours it is high, within 24 hours medium, otherwise low
type FulfillmentPlanner struct{}

// NewFulfillmentPlanner creates a new FulfillmentPlanner instance.
func NewFulfillmentPlanner() FulfillmentPlanner {
	return FulfillmentPlanner{}
}

// PlanOrderDelivery builds the available task that moves a confirmed order
// from the merchant to the purchasing customer.
//
// The task snapshots the merchant stop and the customer drop-off so drivers
// keep working even when the source records change later.
func (p FulfillmentPlanner) PlanOrderDelivery(
	taskID kernel.UUID,
	o *order.Order,
	m *merchant.Merchant,
	listings []*listing.Listing,
	recipientName, recipientAddress, recipientPhone string,
	now time.Time,
) (*task.Task, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Confirmed {
		return nil, errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to plan delivery for", o.Status()),
		)
	}
	if err := p.validatePickupStop(m); err != nil {
		return nil, err
	}

	if len(o.Items()) == 0 {
		return nil, ErrNothingToDeliver
	}

	foodItems := make([]string, 0, len(o.Items()))
	for _, item := range o.Items() {
		foodItems = append(foodItems, item.Name())
	}

	bestBefore, err := earliestBestBefore(listings)
	if err != nil {
		return nil, err
	}

	recipient, err := task.NewRecipient(
		recipientName, recipientAddress, recipientPhone, task.KindCustomer,
	)
	if err != nil {
		return nil, err
	}

	return task.NewTask(
		taskID,
		o.ID(),
		m.BusinessName(),
		m.BusinessAddress(),
		m.Phone(),
		recipient,
		foodItems,
		p.priorityFor(bestBefore, now),
		o.PickupTime(),
		bestBefore.Format(time.Kitchen),
	)
}

// PlanDonationPickup builds the available task that moves a claimed listing
// from the merchant to the claiming NGO. claimID links the task back to the
// claim the same way an order id links a purchase delivery.
func (p FulfillmentPlanner) PlanDonationPickup(
	taskID, claimID kernel.UUID,
	l *listing.Listing,
	m *merchant.Merchant,
	ngoName, ngoAddress, ngoPhone, pickupTime string,
	now time.Time,
) (*task.Task, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Status() != listing.Active {
		return nil, errs.NewInvalidStateErrorWithCause(
			"listing status",
			fmt.Errorf("%s is not a valid status to claim", l.Status()),
		)
	}
	if err := p.validatePickupStop(m); err != nil {
		return nil, err
	}

	recipient, err := task.NewRecipient(ngoName, ngoAddress, ngoPhone, task.KindNGO)
	if err != nil {
		return nil, err
	}

	return task.NewTask(
		taskID,
		claimID,
		m.BusinessName(),
		m.BusinessAddress(),
		m.Phone(),
		recipient,
		[]string{fmt.Sprintf("%s x%d", l.Title(), l.Quantity())},
		p.priorityFor(l.BestBefore(), now),
		pickupTime,
		l.BestBefore().Format(time.Kitchen),
	)
}

func (p FulfillmentPlanner) validatePickupStop(m *merchant.Merchant) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.IsApproved() {
		return errs.NewForbiddenErrorWithCause(
			"merchant",
			fmt.Errorf("merchant %s is not approved", m.ID()),
		)
	}
	return nil
}

func (p FulfillmentPlanner) priorityFor(bestBefore, now time.Time) task.Priority {
	switch left := bestBefore.Sub(now); {
	case left <= highPriorityWindow:
		return task.PriorityHigh
	case left <= mediumPriorityWindow:
		return task.PriorityMedium
	default:
		return task.PriorityLow
	}
}

func earliestBestBefore(listings []*listing.Listing) (time.Time, error) {
	if len(listings) == 0 {
		return time.Time{}, ErrNothingToDeliver
	}

	earliest := time.Time{}
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return time.Time{}, err
		}
		if earliest.IsZero() || l.BestBefore().Before(earliest) {
			earliest = l.BestBefore()
		}
	}
	return earliest, nil
}
