package task

import (
	"errors"
	"fmt"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not
	// created through the NewTask or RestoreTask factory methods.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")
)

// Task represents one pickup-and-delivery job: collect food from a merchant
// and bring it to a customer or NGO recipient. It is the aggregate root for
// the driver workflow and the only entity in the system that concurrent
// actors race for.
//
// Task maintains these invariants:
//   - Must have a valid unique identifier and order reference
//   - Owned by no driver while Available; exclusively owned by the
//     accepting driver from Accepted onward
//   - Pickup proof is present from Delivering onward and never before
//   - The status sequence over time is a prefix of
//     available, accepted, picking-up, delivering, completed
type Task struct {
	id              kernel.UUID
	orderID         kernel.UUID
	merchantName    string
	merchantAddress string
	merchantPhone   string
	recipient       Recipient
	foodItems       []string
	priority        Priority
	pickupTime      string
	expiryTime      string
	status          Status
	driverID        *kernel.UUID
	pickupProof     string

	isConstructed bool
}

// NewTask creates a Task in Available status, unowned and waiting in the
// shared pool.
func NewTask(
	id, orderID kernel.UUID,
	merchantName, merchantAddress, merchantPhone string,
	recipient Recipient,
	foodItems []string,
	priority Priority,
	pickupTime, expiryTime string,
) (*Task, error) {
	t := &Task{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setMerchantStop(merchantName, merchantAddress),
		t.setRecipient(recipient),
		t.setFoodItems(foodItems),
		t.setPriority(priority),
	); err != nil {
		return nil, err
	}

	t.merchantPhone = merchantPhone
	t.pickupTime = pickupTime
	t.expiryTime = expiryTime
	return t, nil
}

// RestoreTask reconstructs a Task from persistent storage.
// Enforces the ownership and proof invariants so corrupt rows cannot enter
// the domain: a claimed task must name its driver, a delivering or completed
// task must carry proof.
func RestoreTask(
	id, orderID kernel.UUID,
	merchantName, merchantAddress, merchantPhone string,
	recipient Recipient,
	foodItems []string,
	priority Priority,
	pickupTime, expiryTime string,
	status Status,
	driverID *kernel.UUID,
	pickupProof string,
) (*Task, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if status == Available && driverID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"driverID",
			errors.New("available task must not have a driver"),
		)
	}
	if status != Available && driverID == nil {
		return nil, errs.NewValueIsRequiredError("driverID")
	}
	if (status == Delivering || status == Completed) && pickupProof == "" {
		return nil, errs.NewValueIsRequiredError("pickupProof")
	}

	t, err := NewTask(
		id, orderID,
		merchantName, merchantAddress, merchantPhone,
		recipient, foodItems, priority, pickupTime, expiryTime,
	)
	if err != nil {
		return nil, err
	}

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *driverID
		t.driverID = &idCopy
	}

	t.status = status
	t.pickupProof = pickupProof
	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the identifier of the order this task fulfills.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// MerchantName returns the pickup stop's business name.
func (t *Task) MerchantName() string {
	return t.merchantName
}

// MerchantAddress returns the pickup stop's address.
func (t *Task) MerchantAddress() string {
	return t.merchantAddress
}

// MerchantPhone returns the pickup stop's contact number, possibly empty.
func (t *Task) MerchantPhone() string {
	return t.merchantPhone
}

// Recipient returns the delivery destination.
func (t *Task) Recipient() Recipient {
	return t.recipient
}

// FoodItems returns a copy of the food item summary lines.
func (t *Task) FoodItems() []string {
	return append([]string(nil), t.foodItems...)
}

// Priority returns the task's pickup urgency.
func (t *Task) Priority() Priority {
	return t.priority
}

// PickupTime returns the agreed pickup time as shown to the driver.
func (t *Task) PickupTime() string {
	return t.pickupTime
}

// ExpiryTime returns the time after which the food is no longer worth
// delivering, as shown to the driver.
func (t *Task) ExpiryTime() string {
	return t.expiryTime
}

// Status returns the current lifecycle status.
func (t *Task) Status() Status {
	return t.status
}

// Driver returns the owning driver's ID, or nil while the task is Available.
func (t *Task) Driver() *kernel.UUID {
	return t.driverID
}

// PickupProof returns the evidence recorded when pickup was confirmed.
// Empty until the task reaches Delivering.
func (t *Task) PickupProof() string {
	return t.pickupProof
}

// Accept claims the task for the given driver.
//
// Business rules:
//   - The task must be Available
//   - The driver ID must be valid
//
// Exactly one acceptance wins; every attempt on an already-claimed task
// fails with a ConflictError and mutates nothing.
func (t *Task) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.Accept()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.driverID = &driverID
	return nil
}

// StartPickup moves the task to PickingUp.
//
// Business rules:
//   - Only the owning driver may start pickup (ForbiddenError otherwise)
//   - The task must be Accepted
func (t *Task) StartPickup(driverID kernel.UUID) error {
	if err := t.requireOwner(driverID); err != nil {
		return err
	}

	newStatus, err := t.status.StartPickup()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// ConfirmPickup records pickup evidence and moves the task to Delivering.
//
// Business rules:
//   - Proof must be a non-empty evidence payload; pickup cannot be
//     confirmed without it, regardless of the task's state
//   - Only the owning driver may confirm pickup
//   - The task must be PickingUp
//
// The proof check runs first so a missing proof is always reported as an
// input error and never consumes a transition.
func (t *Task) ConfirmPickup(driverID kernel.UUID, proof string) error {
	if proof == "" {
		return errs.NewValueIsRequiredError("proof")
	}

	if err := t.requireOwner(driverID); err != nil {
		return err
	}

	newStatus, err := t.status.ConfirmPickup()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.pickupProof = proof
	return nil
}

// Complete finishes the delivery and moves the task to its terminal state.
//
// Business rules:
//   - Only the owning driver may complete the task
//   - The task must be Delivering
//
// Completing the task is what fulfills the linked order; that coordination
// lives in the application layer.
func (t *Task) Complete(driverID kernel.UUID) error {
	if err := t.requireOwner(driverID); err != nil {
		return err
	}

	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

func (t *Task) requireOwner(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if t.driverID == nil || !t.driverID.IsEqual(driverID) {
		return errs.NewForbiddenErrorWithCause(
			"driver",
			fmt.Errorf("task %s is not owned by driver %s", t.id, driverID),
		)
	}
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Task) setMerchantStop(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("merchantName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("merchantAddress")
	}
	t.merchantName = name
	t.merchantAddress = address
	return nil
}

func (t *Task) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	t.recipient = recipient
	return nil
}

func (t *Task) setFoodItems(foodItems []string) error {
	if len(foodItems) == 0 {
		return errs.NewValueIsRequiredError("foodItems")
	}
	t.foodItems = append([]string(nil), foodItems...)
	return nil
}

func (t *Task) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}
