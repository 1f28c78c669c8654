package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/core/domain/model/order"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/pkg/errs"
)

var plannerNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func approvedMerchant(t *testing.T) *merchant.Merchant {
	t.Helper()
	m, err := merchant.NewMerchant(
		kernel.NewUUID(),
		"Lisa Wong",
		"lisa@oliveg.example",
		"+1 555 0134",
		"Olive Garden Restaurant",
		"123 Main St, Klang",
	)
	require.NoError(t, err)
	require.NoError(t, m.Approve())
	return m
}

func activeListing(t *testing.T, merchantID kernel.UUID, bestBefore time.Time) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(
		kernel.NewUUID(),
		merchantID,
		"Surprise Bag - Bakery",
		"Assorted pastries from today",
		3,
		nil,
		bestBefore,
	)
	require.NoError(t, err)
	return l
}

func confirmedOrder(t *testing.T, l *listing.Listing) *order.Order {
	t.Helper()
	item, err := order.NewItem(l.ID().String(), l.Title(), 25.99)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item},
		"Credit Card",
		"6:00 PM",
	)
	require.NoError(t, err)
	return o
}

func Test_FulfillmentPlanner_PlanOrderDelivery(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	l := activeListing(t, m.ID(), plannerNow.Add(6*time.Hour))
	o := confirmedOrder(t, l)
	taskID := kernel.NewUUID()

	// When
	tsk, err := planner.PlanOrderDelivery(
		taskID, o, m, []*listing.Listing{l},
		"Sarah Chen", "456 Oak Ave", "+1 555 0188",
		plannerNow,
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, taskID, tsk.ID())
	assert.Equal(t, o.ID(), tsk.OrderID())
	assert.Equal(t, task.Available, tsk.Status())
	assert.Equal(t, "Olive Garden Restaurant", tsk.MerchantName())
	assert.Equal(t, "123 Main St, Klang", tsk.MerchantAddress())
	assert.Equal(t, "+1 555 0134", tsk.MerchantPhone())
	assert.Equal(t, "Sarah Chen", tsk.Recipient().Name())
	assert.Equal(t, task.KindCustomer, tsk.Recipient().Kind())
	assert.Equal(t, []string{"Surprise Bag - Bakery"}, tsk.FoodItems())
	assert.Equal(t, "6:00 PM", tsk.PickupTime())
	assert.Equal(t, task.PriorityMedium, tsk.Priority())
}

func Test_FulfillmentPlanner_PriorityFollowsExpiry(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)

	tests := []struct {
		name       string
		bestBefore time.Time
		want       task.Priority
	}{
		{"expires within four hours", plannerNow.Add(2 * time.Hour), task.PriorityHigh},
		{"expires within a day", plannerNow.Add(10 * time.Hour), task.PriorityMedium},
		{"keeps for days", plannerNow.Add(72 * time.Hour), task.PriorityLow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := activeListing(t, m.ID(), test.bestBefore)
			o := confirmedOrder(t, l)

			// When
			tsk, err := planner.PlanOrderDelivery(
				kernel.NewUUID(), o, m, []*listing.Listing{l},
				"Sarah Chen", "456 Oak Ave", "",
				plannerNow,
			)

			// Then
			require.NoError(t, err)
			assert.Equal(t, test.want, tsk.Priority())
		})
	}
}

func Test_FulfillmentPlanner_EarliestExpiryWins(t *testing.T) {
	// Given: two listings, one of them urgent
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	slow := activeListing(t, m.ID(), plannerNow.Add(48*time.Hour))
	urgent := activeListing(t, m.ID(), plannerNow.Add(time.Hour))
	o := confirmedOrder(t, slow)

	// When
	tsk, err := planner.PlanOrderDelivery(
		kernel.NewUUID(), o, m, []*listing.Listing{slow, urgent},
		"Sarah Chen", "456 Oak Ave", "",
		plannerNow,
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, task.PriorityHigh, tsk.Priority())
}

func Test_FulfillmentPlanner_RejectsUnapprovedMerchant(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m, err := merchant.NewMerchant(
		kernel.NewUUID(), "Lisa Wong", "lisa@oliveg.example", "",
		"Olive Garden Restaurant", "123 Main St, Klang",
	)
	require.NoError(t, err)
	l := activeListing(t, m.ID(), plannerNow.Add(6*time.Hour))
	o := confirmedOrder(t, l)

	// When
	_, err = planner.PlanOrderDelivery(
		kernel.NewUUID(), o, m, []*listing.Listing{l},
		"Sarah Chen", "456 Oak Ave", "",
		plannerNow,
	)

	// Then
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func Test_FulfillmentPlanner_RejectsFulfilledOrder(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	l := activeListing(t, m.ID(), plannerNow.Add(6*time.Hour))
	o := confirmedOrder(t, l)
	require.NoError(t, o.Fulfill())

	// When
	_, err := planner.PlanOrderDelivery(
		kernel.NewUUID(), o, m, []*listing.Listing{l},
		"Sarah Chen", "456 Oak Ave", "",
		plannerNow,
	)

	// Then
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func Test_FulfillmentPlanner_RejectsEmptyListings(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	l := activeListing(t, m.ID(), plannerNow.Add(6*time.Hour))
	o := confirmedOrder(t, l)

	// When
	_, err := planner.PlanOrderDelivery(
		kernel.NewUUID(), o, m, nil,
		"Sarah Chen", "456 Oak Ave", "",
		plannerNow,
	)

	// Then
	assert.ErrorIs(t, err, ErrNothingToDeliver)
}

func Test_FulfillmentPlanner_PlanDonationPickup(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	l := activeListing(t, m.ID(), plannerNow.Add(3*time.Hour))
	claimID := kernel.NewUUID()

	// When
	tsk, err := planner.PlanDonationPickup(
		kernel.NewUUID(), claimID, l, m,
		"City Food Bank", "12 Relief Rd", "+1 555 0100", "5:00 PM",
		plannerNow,
	)

	// Then
	require.NoError(t, err)
	assert.Equal(t, claimID, tsk.OrderID())
	assert.Equal(t, task.KindNGO, tsk.Recipient().Kind())
	assert.Equal(t, "City Food Bank", tsk.Recipient().Name())
	assert.Equal(t, []string{"Surprise Bag - Bakery x3"}, tsk.FoodItems())
	assert.Equal(t, task.PriorityHigh, tsk.Priority())
	assert.Equal(t, "5:00 PM", tsk.PickupTime())
}

func Test_FulfillmentPlanner_RejectsRemovedListingDonation(t *testing.T) {
	// Given
	planner := NewFulfillmentPlanner()
	m := approvedMerchant(t)
	l := activeListing(t, m.ID(), plannerNow.Add(3*time.Hour))
	require.NoError(t, l.Remove())

	// When
	_, err := planner.PlanDonationPickup(
		kernel.NewUUID(), kernel.NewUUID(), l, m,
		"City Food Bank", "12 Relief Rd", "", "5:00 PM",
		plannerNow,
	)

	// Then
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
