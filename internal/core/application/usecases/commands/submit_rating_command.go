package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer rating a fulfilled order.
// Range and one-time checks are owned by the order aggregate so the rules
// hold no matter where a rating comes from.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	rating   int
	feedback string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a fulfilled order.
func NewSubmitRatingCommand(orderID kernel.UUID, rating int, feedback string) (SubmitRatingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitRatingCommand{}, err
	}

	return SubmitRatingCommand{
		orderID:  orderID,
		rating:   rating,
		feedback: feedback,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to rate.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the submitted star rating.
func (c SubmitRatingCommand) Rating() int {
	return c.rating
}

// Feedback returns the submitted free-text feedback, possibly empty.
func (c SubmitRatingCommand) Feedback() string {
	return c.feedback
}
