package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CartLine is one entry of the checkout cart: a listing reference with the
// name and price the customer saw when adding it.
type CartLine struct {
	ListingID kernel.UUID
	Name      string
	Price     float64
}

// PlaceOrderCommand represents a customer checking out their cart.
// Checkout creates the confirmed order together with the available delivery
// task drivers will see on the board.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    orderID, taskID, customerID,
//	    cart, "Credit Card", "6:00 PM",
//	    "Sarah Chen", "456 Oak Ave", "+1 555 0188",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	taskID           kernel.UUID
	customerID       kernel.UUID
	cart             []CartLine
	paymentMethod    string
	pickupTime       string
	recipientName    string
	recipientAddress string
	recipientPhone   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command.
// The cart must not be empty; payment method, pickup time and the drop-off
// name and address are required. Line-level validation happens when the
// order aggregate is built.
func NewPlaceOrderCommand(
	orderID, taskID, customerID kernel.UUID,
	cart []CartLine,
	paymentMethod, pickupTime string,
	recipientName, recipientAddress, recipientPhone string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		cart:           append([]CartLine(nil), cart...),
		recipientPhone: recipientPhone,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTaskID(taskID),
		orderCommand.setCustomerID(customerID),
		orderCommand.requireCart(cart),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setPickupTime(pickupTime),
		orderCommand.setRecipient(recipientName, recipientAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TaskID returns the unique identifier for the new delivery task.
func (c PlaceOrderCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CustomerID returns the identifier of the purchasing customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Cart returns the checkout cart lines.
func (c PlaceOrderCommand) Cart() []CartLine {
	return append([]CartLine(nil), c.cart...)
}

// PaymentMethod returns the payment method chosen at checkout.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PickupTime returns the pickup slot chosen at checkout.
func (c PlaceOrderCommand) PickupTime() string {
	return c.pickupTime
}

// RecipientName returns the drop-off contact name.
func (c PlaceOrderCommand) RecipientName() string {
	return c.recipientName
}

// RecipientAddress returns the drop-off address.
func (c PlaceOrderCommand) RecipientAddress() string {
	return c.recipientAddress
}

// RecipientPhone returns the drop-off contact phone, possibly empty.
func (c PlaceOrderCommand) RecipientPhone() string {
	return c.recipientPhone
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) requireCart(cart []CartLine) error {
	if len(cart) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setPickupTime(pickupTime string) error {
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickupTime")
	}

	c.pickupTime = pickupTime
	return nil
}

func (c *PlaceOrderCommand) setRecipient(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}

	c.recipientName = name
	c.recipientAddress = address
	return nil
}
