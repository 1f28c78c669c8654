package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedback/internal/core/application/usecases/commands"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/listing"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/core/ports"
	"feedback/internal/pkg/errs"
)

func claimListingCommandFixture(t *testing.T, listingID kernel.UUID) commands.ClaimListingCommand {
	t.Helper()
	cmd, err := commands.NewClaimListingCommand(
		kernel.NewUUID(), kernel.NewUUID(), listingID,
		"City Food Bank", "12 Relief Rd", "+1 555 0100", "5:00 PM",
	)
	require.NoError(t, err)
	return cmd
}

func TestClaimListingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := approvedMerchantFixture(t)
	l := activeListingFixture(t, m.ID())
	cmd := claimListingCommandFixture(t, l.ID())

	listingRepo := new(MockListingRepository)
	merchantRepo := new(MockMerchantRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("ListingRepository").Return(listingRepo)
	listingRepo.On("Get", mock.Anything, l.ID()).Return(l, nil)
	uow.On("MerchantRepository").Return(merchantRepo)
	merchantRepo.On("Get", mock.Anything, m.ID()).Return(m, nil)
	listingRepo.On("Update", mock.Anything, l).Return(nil)
	uow.On("TaskRepository").Return(taskRepo)
	taskRepo.On("Add", mock.Anything, mock.MatchedBy(func(tsk *task.Task) bool {
		return tsk.ID().IsEqual(cmd.TaskID()) &&
			tsk.OrderID().IsEqual(cmd.ClaimID()) &&
			tsk.Status() == task.Available &&
			tsk.Recipient().Kind() == task.KindNGO &&
			tsk.Recipient().Name() == "City Food Bank"
	})).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	notifier.On("Publish", ctx, m.ID().String(), mock.AnythingOfType("string"), ports.SeverityInfo).
		Return(nil).Once()

	h := commands.NewClaimListingCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	// the claimed listing leaves the marketplace
	require.Equal(t, listing.Removed, l.Status())
	listingRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestClaimListingCommandHandler_Handle_NonCompliantListingRejected(t *testing.T) {
	ctx := t.Context()
	m := approvedMerchantFixture(t)
	l := activeListingFixture(t, m.ID())
	require.NoError(t, l.MarkNonCompliant([]string{"Poor quality images"}))
	cmd := claimListingCommandFixture(t, l.ID())

	listingRepo := new(MockListingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimListingCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, listing.Active, l.Status())
	listingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
