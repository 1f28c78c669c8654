package commands

import (
	"errors"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrClaimListingCommandIsNotConstructed = errors.New(
	"ClaimListingCommand must be created via NewClaimListingCommand constructor",
)

// ClaimListingCommand represents an NGO claiming an active listing as a
// donation. The claim takes the listing off the marketplace and puts a
// pickup task on the driver board.
type ClaimListingCommand struct { //nolint:recvcheck //using for validation
	claimID    kernel.UUID
	taskID     kernel.UUID
	listingID  kernel.UUID
	ngoName    string
	ngoAddress string
	ngoPhone   string
	pickupTime string

	guard guard.ConstructorGuard
}

// NewClaimListingCommand creates a command to claim a listing for donation.
func NewClaimListingCommand(
	claimID, taskID, listingID kernel.UUID,
	ngoName, ngoAddress, ngoPhone, pickupTime string,
) (ClaimListingCommand, error) {
	claimCommand := ClaimListingCommand{
		ngoPhone: ngoPhone,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setClaimID(claimID),
		claimCommand.setTaskID(taskID),
		claimCommand.setListingID(listingID),
		claimCommand.setNGO(ngoName, ngoAddress),
		claimCommand.setPickupTime(pickupTime),
	); err != nil {
		return ClaimListingCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimListingCommand) Validate() error {
	return c.guard.Validate(ErrClaimListingCommandIsNotConstructed)
}

// ClaimID returns the unique identifier of the claim itself.
func (c ClaimListingCommand) ClaimID() kernel.UUID {
	return c.claimID
}

// TaskID returns the unique identifier for the new pickup task.
func (c ClaimListingCommand) TaskID() kernel.UUID {
	return c.taskID
}

// ListingID returns the identifier of the listing being claimed.
func (c ClaimListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// NGOName returns the claiming organization's name.
func (c ClaimListingCommand) NGOName() string {
	return c.ngoName
}

// NGOAddress returns where the donation should be delivered.
func (c ClaimListingCommand) NGOAddress() string {
	return c.ngoAddress
}

// NGOPhone returns the organization's contact phone, possibly empty.
func (c ClaimListingCommand) NGOPhone() string {
	return c.ngoPhone
}

// PickupTime returns the agreed pickup slot.
func (c ClaimListingCommand) PickupTime() string {
	return c.pickupTime
}

func (c *ClaimListingCommand) setClaimID(claimID kernel.UUID) error {
	if err := claimID.Validate(); err != nil {
		return err
	}

	c.claimID = claimID
	return nil
}

func (c *ClaimListingCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ClaimListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *ClaimListingCommand) setNGO(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("ngoName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("ngoAddress")
	}

	c.ngoName = name
	c.ngoAddress = address
	return nil
}

func (c *ClaimListingCommand) setPickupTime(pickupTime string) error {
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickupTime")
	}

	c.pickupTime = pickupTime
	return nil
}
