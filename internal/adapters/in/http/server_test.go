package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "feedback/internal/adapters/in/http"
	"feedback/internal/adapters/out/notify"
	"feedback/internal/core/application/usecases/commands"
	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserFinder resolves every lookup to a fixed account.
type stubUserFinder struct {
	account queries.GetUserQueryResponse
	err     error
}

func (s stubUserFinder) Handle(_ context.Context, _ queries.GetUserQuery) (queries.GetUserQueryResponse, error) {
	return s.account, s.err
}

func newNotificationsServer(finder httpin.UserFinder, feed *notify.InMemoryFeed) *echo.Echo {
	server := httpin.NewServer(
		commands.ApproveMerchantCommandHandler{},
		commands.RejectMerchantCommandHandler{},
		commands.CreateListingCommandHandler{},
		commands.MarkListingNonCompliantCommandHandler{},
		commands.RemoveListingCommandHandler{},
		commands.SetUserRoleCommandHandler{},
		commands.SetUserActiveCommandHandler{},
		commands.AcceptTaskCommandHandler{},
		commands.StartPickupCommandHandler{},
		commands.ConfirmPickupCommandHandler{},
		commands.CompleteDeliveryCommandHandler{},
		commands.PlaceOrderCommandHandler{},
		commands.SubmitRatingCommandHandler{},
		commands.ClaimListingCommandHandler{},
		queries.GetMerchantsByStatusQueryHandler{},
		queries.GetListingsQueryHandler{},
		queries.GetAvailableTasksQueryHandler{},
		queries.GetUsersQueryHandler{},
		finder,
		feed,
		nil,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func getNotifications(e *echo.Echo, actor, audience string) *httptest.ResponseRecorder {
	target := "/api/notifications"
	if audience != "" {
		target += "?audience=" + audience
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if actor != "" {
		req.Header.Set("X-User-ID", actor)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetNotifications_MissingActorHeader_BadRequest(t *testing.T) {
	// Given
	e := newNotificationsServer(stubUserFinder{}, notify.NewInMemoryFeed())

	// When
	rec := getNotifications(e, "", "")

	// Then
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNotifications_OwnFeed_ReturnsEntries(t *testing.T) {
	// Given
	actor := kernel.NewUUID()
	feed := notify.NewInMemoryFeed()
	require.NoError(t, feed.Publish(context.Background(), actor.String(), "Your order is on its way", ports.SeverityInfo))

	e := newNotificationsServer(stubUserFinder{}, feed)

	// When
	rec := getNotifications(e, actor.String(), "")

	// Then
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []ports.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Your order is on its way", entries[0].Message)
}

func TestGetNotifications_NonAdminAudienceOverride_Forbidden(t *testing.T) {
	// Given
	actor := kernel.NewUUID()
	other := kernel.NewUUID()
	feed := notify.NewInMemoryFeed()
	require.NoError(t, feed.Publish(context.Background(), other.String(), "private entry", ports.SeverityInfo))

	finder := stubUserFinder{account: queries.GetUserQueryResponse{ID: actor, Role: "driver", Active: true}}
	e := newNotificationsServer(finder, feed)

	// When
	rec := getNotifications(e, actor.String(), other.String())

	// Then
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "private entry")
}

func TestGetNotifications_AdminAudienceOverride_ReadsSharedFeed(t *testing.T) {
	// Given
	actor := kernel.NewUUID()
	feed := notify.NewInMemoryFeed()
	require.NoError(t, feed.Publish(context.Background(), "admin", "New merchant awaiting review", ports.SeverityInfo))

	finder := stubUserFinder{account: queries.GetUserQueryResponse{ID: actor, Role: "admin", Active: true}}
	e := newNotificationsServer(finder, feed)

	// When
	rec := getNotifications(e, actor.String(), "admin")

	// Then
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []ports.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "New merchant awaiting review", entries[0].Message)
}

func TestGetNotifications_OverrideMatchingOwnID_SkipsRoleCheck(t *testing.T) {
	// Given
	actor := kernel.NewUUID()
	feed := notify.NewInMemoryFeed()
	require.NoError(t, feed.Publish(context.Background(), actor.String(), "rating received", ports.SeveritySuccess))

	// The finder errors on every lookup, so a role check would fail the request.
	finder := stubUserFinder{err: assert.AnError}
	e := newNotificationsServer(finder, feed)

	// When
	rec := getNotifications(e, actor.String(), actor.String())

	// Then
	assert.Equal(t, http.StatusOK, rec.Code)
}
