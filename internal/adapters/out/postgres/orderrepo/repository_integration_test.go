package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/attachmentrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/pgtest"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(ctx context.Context, id kernel.UUID, aggregate kernel.EventSource) {
	m.Called(ctx, id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence, including
// attachment delta writes, against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *orderrepo.GormOrderRepository
	attachments *attachmentrepo.GormOrderAttachmentRepository
	tracker     *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &attachmentrepo.OrderAttachmentDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "orders", "order_attachments"))

	suite.tracker = new(MockAggregateTracker)
	suite.attachments = attachmentrepo.NewGormOrderAttachmentRepository(suite.db)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.attachments, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addPickedUpOrder(ctx context.Context) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(o.SetDeliveryman(kernel.NewUUID()))
	suite.Require().NoError(o.SetStatus(order.PickedUp))

	suite.tracker.On("TrackAggregate", mock.Anything, o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.assertOrderCount(1)
	suite.Equal(1, o.PendingEventCount(), "repository must not drain events")
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	original := suite.addPickedUpOrder(ctx)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.RecipientID().IsEqual(original.RecipientID()))
	suite.True(retrieved.DeliverymanID().IsEqual(*original.DeliverymanID()))
	suite.Equal(order.PickedUp, retrieved.Status())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
	suite.Require().NotNil(retrieved.UpdatedAt())
	suite.Equal(0, retrieved.PendingEventCount())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsOnlyAttachmentDelta() {
	ctx := context.Background()
	stored := suite.addPickedUpOrder(ctx)

	keep, drop, fresh := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	seed := make([]order.OrderAttachment, 0, 2)
	for _, id := range []kernel.UUID{keep, drop} {
		a, err := order.NewOrderAttachment(stored.ID(), id)
		suite.Require().NoError(err)
		seed = append(seed, a)
	}
	suite.Require().NoError(suite.attachments.CreateMany(ctx, seed))

	loaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Attachments().Items(), 2)

	_, _, err = loaded.UpdateAttachments(keep, fresh)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.SetStatus(order.Delivered))

	suite.tracker.On("TrackAggregate", mock.Anything, loaded.ID(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, reloaded.Status())

	ids := make(map[kernel.UUID]bool)
	for _, a := range reloaded.Attachments().Items() {
		ids[a.AttachmentID()] = true
	}
	suite.Len(ids, 2)
	suite.True(ids[keep])
	suite.True(ids[fresh])
	suite.False(ids[drop])
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndAttachments() {
	ctx := context.Background()
	stored := suite.addPickedUpOrder(ctx)
	a, err := order.NewOrderAttachment(stored.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.attachments.CreateMany(ctx, []order.OrderAttachment{a}))

	suite.Require().NoError(suite.repository.Delete(ctx, stored))

	suite.assertOrderCount(0)
	left, err := suite.attachments.GetManyByOrderID(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Empty(left)

	_, err = suite.repository.Get(ctx, stored.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
