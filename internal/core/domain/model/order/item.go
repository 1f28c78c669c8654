package order

import (
	"errors"
	"fmt"

	"feedback/internal/pkg/errs"
	"feedback/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one cart line: a food item claimed from a listing at a snapshot
// price. The name and price are copied at checkout so later listing edits
// never change what an order says the customer bought.
type Item struct {
	listingID string
	name      string
	price     float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated cart line.
// The listing reference and name are required; the price must be positive.
func NewItem(listingID, name string, price float64) (Item, error) {
	if listingID == "" {
		return Item{}, errs.NewValueIsRequiredError("listingID")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%.2f is not greater than 0", price),
		)
	}

	return Item{
		listingID: listingID,
		name:      name,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ListingID returns the identifier of the listing this line came from.
func (i Item) ListingID() string {
	return i.listingID
}

// Name returns the snapshot name of the food item.
func (i Item) Name() string {
	return i.name
}

// Price returns the snapshot price of the food item.
func (i Item) Price() float64 {
	return i.price
}
