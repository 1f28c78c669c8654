package taskrepo_test

import (
	"context"
	"testing"
	"time"

	"feedback/internal/adapters/out/postgres/taskrepo"
	"feedback/internal/core/domain/model/kernel"
	"feedback/internal/core/domain/model/task"
	"feedback/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TaskRepositoryIntegrationTestSuite provides integration tests for TaskRepository
// using PostgreSQL containers to verify persistence and the accept race behavior.
type TaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	taskRepository *taskrepo.GormTaskRepository
	tracker        *MockAggregateTracker
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&taskrepo.TaskDTO{}))
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tasks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.taskRepository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAdd_ValidTask_Success() {
	ctx := context.Background()
	t := suite.createAvailableTask()

	suite.tracker.On("TrackAggregate", t.ID(), t).Once()

	err := suite.taskRepository.Add(ctx, t)
	suite.Require().NoError(err)

	suite.assertTaskCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_ExistingTask_RoundTrips() {
	ctx := context.Background()
	t := suite.createAvailableTask()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.taskRepository.Add(ctx, t))

	loaded, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(t))
	suite.Equal(t.OrderID(), loaded.OrderID())
	suite.Equal(t.MerchantName(), loaded.MerchantName())
	suite.Equal(t.Recipient().Name(), loaded.Recipient().Name())
	suite.Equal(t.Recipient().Kind(), loaded.Recipient().Kind())
	suite.Equal(t.FoodItems(), loaded.FoodItems())
	suite.Equal(t.Priority(), loaded.Priority())
	suite.Equal(task.Available, loaded.Status())
	suite.Nil(loaded.Driver())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_MissingTask_NotFound() {
	ctx := context.Background()

	id := kernel.NewUUID()

	_, err := suite.taskRepository.Get(ctx, id)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_AcceptedTask_PersistsDriver() {
	ctx := context.Background()
	t := suite.createAvailableTask()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.taskRepository.Add(ctx, t))

	driverID := kernel.NewUUID()
	suite.Require().NoError(t.Accept(driverID))

	suite.Require().NoError(suite.taskRepository.Update(ctx, t))

	loaded, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.Accepted, loaded.Status())
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverID))
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_TwoDriversRace_SecondWriteConflicts() {
	ctx := context.Background()
	t := suite.createAvailableTask()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.taskRepository.Add(ctx, t))

	// Both drivers load the task while it is still available.
	first, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	second, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)

	driverA := kernel.NewUUID()
	driverB := kernel.NewUUID()

	suite.Require().NoError(first.Accept(driverA))
	suite.Require().NoError(second.Accept(driverB))

	suite.Require().NoError(suite.taskRepository.Update(ctx, first))

	err = suite.taskRepository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// The winner's claim stands.
	loaded, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(driverA))
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle_RoundTrips() {
	ctx := context.Background()
	t := suite.createAvailableTask()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.taskRepository.Add(ctx, t))

	driverID := kernel.NewUUID()

	suite.Require().NoError(t.Accept(driverID))
	suite.Require().NoError(suite.taskRepository.Update(ctx, t))

	suite.Require().NoError(t.StartPickup(driverID))
	suite.Require().NoError(suite.taskRepository.Update(ctx, t))

	suite.Require().NoError(t.ConfirmPickup(driverID, "photo-17.jpg"))
	suite.Require().NoError(suite.taskRepository.Update(ctx, t))

	suite.Require().NoError(t.Complete(driverID))
	suite.Require().NoError(suite.taskRepository.Update(ctx, t))

	loaded, err := suite.taskRepository.Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Equal(task.Completed, loaded.Status())
	suite.Equal("photo-17.jpg", loaded.PickupProof())
}

// Helper methods

func (suite *TaskRepositoryIntegrationTestSuite) createAvailableTask() *task.Task {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	recipient, err := task.NewRecipient("John Doe", "456 Oak Ave", "+1 555 0100", task.KindCustomer)
	suite.Require().NoError(err)

	t, err := task.NewTask(
		id, orderID,
		"Green Bistro", "123 Main St", "+1 555 0134",
		recipient,
		[]string{"Surprise Bag"},
		task.PriorityHigh,
		"6:00 PM",
		"8:00 PM",
	)
	suite.Require().NoError(err)
	return t
}

func (suite *TaskRepositoryIntegrationTestSuite) assertTaskCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&taskrepo.TaskDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryIntegrationTestSuite))
}
