package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedback/internal/core/application/usecases/commands"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/merchant"
	"feedback/internal/core/domain/model/order"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/core/domain/model/user"
	"feedback/internal/core/ports"
)

type MockMerchantRepository struct{ mock.Mock }

func (m *MockMerchantRepository) Add(ctx context.Context, mc *merchant.Merchant) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMerchantRepository) Update(ctx context.Context, mc *merchant.Merchant) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}
func (m *MockMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}
func (m *MockListingRepository) GetAllPastBestBefore(
	ctx context.Context,
	asOf time.Time,
) ([]*listing.Listing, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Listing), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, audience, message string, severity ports.Severity) error {
	args := m.Called(ctx, audience, message, severity)
	return args.Error(0)
}
func (m *MockNotifier) Feed(ctx context.Context, audience string) ([]ports.Notification, error) {
	args := m.Called(ctx, audience)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Notification), args.Error(1)
}

// MockUoW satisfies every composite unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}
func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}
func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockMerchantUoWFactory struct{ mock.Mock }

func (m *MockMerchantUoWFactory) Create() commands.MerchantUoW {
	args := m.Called()
	return args.Get(0).(commands.MerchantUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// Domain fixtures shared by handler tests.

func pendingMerchantFixture(t *testing.T) *merchant.Merchant {
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
	return m
}

func approvedMerchantFixture(t *testing.T) *merchant.Merchant {
	t.Helper()
	m := pendingMerchantFixture(t)
	require.NoError(t, m.Approve())
	return m
}

func activeListingFixture(t *testing.T, merchantID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(
		kernel.NewUUID(),
		merchantID,
		"Surprise Bag - Bakery",
		"Assorted pastries from today",
		3,
		nil,
		time.Now().Add(6*time.Hour),
	)
	require.NoError(t, err)
	return l
}

func availableTaskFixture(t *testing.T) *task.Task {
	t.Helper()
	recipient, err := task.NewRecipient("Sarah Chen", "456 Oak Ave", "+1 555 0188", task.KindCustomer)
	require.NoError(t, err)
	tsk, err := task.NewTask(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Olive Garden Restaurant",
		"123 Main St, Klang",
		"+1 555 0134",
		recipient,
		[]string{"Surprise Bag - Bakery"},
		task.PriorityMedium,
		"6:00 PM",
		"8:00 PM",
	)
	require.NoError(t, err)
	return tsk
}

func confirmedOrderFixture(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID().String(), "Surprise Bag - Bakery", 25.99)
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
