// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"feedback/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MerchantRepoFactory provides access to the merchant repository within a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MerchantUoW manages transactions for merchant-only operations.
	// Used by the verification verdict commands.
	MerchantUoW interface {
		TxManager
		MerchantRepoFactory
	}

	// MerchantUoWFactory creates new merchant unit of work instances.
	MerchantUoWFactory interface {
		Create() MerchantUoW
	}

	// ListingUoW manages transactions for listing-only operations.
	// Used by compliance, removal and expiry commands.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// CatalogUoW manages transactions that read the merchant while writing
	// listings, such as posting a new listing.
	CatalogUoW interface {
		TxManager
		ListingRepoFactory
		MerchantRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// TaskUoW manages transactions for task-only operations.
	// Used by the driver lifecycle commands up to pickup confirmation.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// DeliveryUoW manages transactions across task and order aggregates.
	// Used when completing a delivery fulfills the linked order.
	DeliveryUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClaimUoW manages transactions for the donation claim flow: it reads
	// the listing and its merchant and writes the claimed listing plus the
	// pickup task.
	ClaimUoW interface {
		TxManager
		ListingRepoFactory
		MerchantRepoFactory
		TaskRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// CheckoutUoW manages transactions for checkout: it reads listings and
	// the merchant and writes the order plus its delivery task.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
		MerchantRepoFactory
		TaskRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// UserUoW manages transactions for user administration operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
