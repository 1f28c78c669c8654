package order

import (
	"errors"
	"fmt"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

const (
	// MinRating and MaxRating bound the post-delivery star rating.
	MinRating = 1
	MaxRating = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's checkout of one or more food items from the
// cart. It is the aggregate root for the purchase workflow: confirmed at
// checkout, fulfilled when the linked delivery task completes, and rated at
// most once afterwards.
//
// Order maintains these invariants:
//   - The cart is never empty; the total is the sum of the item prices
//   - Payment method and pickup time are chosen at checkout
//   - rated is true if and only if a rating is stored
//   - A rating can be submitted at most once, and only after fulfillment
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []Item
	total         float64
	paymentMethod string
	pickupTime    string
	status        Status
	rating        int
	feedback      string
	rated         bool

	isConstructed bool
}

// NewOrder creates an Order in Confirmed status from a non-empty cart.
// Every missing checkout field is reported by name so the presentation
// layer can point at the exact control that blocked the purchase.
func NewOrder(
	id, customerID kernel.UUID,
	items []Item,
	paymentMethod, pickupTime string,
) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Enforces the rating invariant so corrupt rows cannot enter the domain.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []Item,
	paymentMethod, pickupTime string,
	status Status,
	rating int,
	feedback string,
	rated bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if rated && (rating < MinRating || rating > MaxRating) {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if !rated && rating != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rating",
			errors.New("unrated order must not carry a rating"),
		)
	}
	if rated && status != Fulfilled {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rated",
			fmt.Errorf("only fulfilled orders can be rated, status is %s", status),
		)
	}

	o, err := NewOrder(id, customerID, items, paymentMethod, pickupTime)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.rating = rating
	o.feedback = feedback
	o.rated = rated
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the cart lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Total returns the sum of the item prices at checkout.
func (o *Order) Total() float64 {
	return o.total
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PickupTime returns the pickup slot chosen at checkout.
func (o *Order) PickupTime() string {
	return o.pickupTime
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rating returns the stored star rating, zero until the order is rated.
func (o *Order) Rating() int {
	return o.rating
}

// Feedback returns the free-text feedback left with the rating.
func (o *Order) Feedback() string {
	return o.feedback
}

// IsRated reports whether a rating was already submitted.
func (o *Order) IsRated() bool {
	return o.rated
}

// Fulfill marks the order as delivered.
// Driven solely by the linked delivery task reaching its terminal state;
// the coordination lives in the application layer.
func (o *Order) Fulfill() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SubmitRating stores the customer's one-time rating and feedback.
//
// Business rules:
//   - The order must be fulfilled
//   - The order must not have been rated before; the flag flips exactly once
//   - The rating must lie in [MinRating, MaxRating]
//
// State is checked before input so a repeat submission always reads as an
// InvalidStateError regardless of what was submitted.
func (o *Order) SubmitRating(rating int, feedback string) error {
	if o.status != Fulfilled {
		return errs.NewInvalidStateErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to rate", o.status),
		)
	}
	if o.rated {
		return errs.NewInvalidStateErrorWithCause(
			"order status",
			errors.New("order is already rated"),
		)
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	o.rating = rating
	o.feedback = feedback
	o.rated = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Price()
	}

	o.items = append([]Item(nil), items...)
	o.total = total
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setPickupTime(pickupTime string) error {
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	o.pickupTime = pickupTime
	return nil
}
