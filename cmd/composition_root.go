package cmd

import (
	"log/slog"

	httpin "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/postgres"
	redis_adapter "fastfeet/internal/adapters/out/redis"
	"fastfeet/internal/core/application/subscribers"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/jobs"
	"fastfeet/internal/pkg/eventbus"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	dispatcher *eventbus.Dispatcher
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.NotificationPublisher
}

// NewCompositionRoot wires the dispatcher, the unit of work and every order
// subscriber. redisClient may be nil, in which case notifications are only
// stored. It fails if an order event kind is left without a subscriber.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (CompositionRoot, error) {
	dispatcher := eventbus.New(logger)

	var publisher ports.NotificationPublisher = redis_adapter.NoopNotificationPublisher{}
	if redisClient != nil {
		publisher = redis_adapter.NewNotificationPublisher(redisClient, config.RedisChannelPrefix)
	}

	c := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		dispatcher: dispatcher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, dispatcher, logger),
		publisher:  publisher,
	}

	c.subscribe()
	if err := dispatcher.Require(order.CreatedKind, order.PickedUpKind, order.DeliveredKind, order.ReturnedKind); err != nil {
		return CompositionRoot{}, err
	}
	return c, nil
}

// subscribe registers the notification subscribers. They read through a unit
// of work that never begins a transaction, so they see committed data only.
func (c *CompositionRoot) subscribe() {
	reader := c.uowFactory.Create()
	orders, recipients := reader.OrderRepository(), reader.RecipientRepository()
	sender := c.CreateSendNotificationCommandHandler()

	subscribers.NewOnOrderCreated(orders, recipients, sender, c.logger).Subscribe(c.dispatcher)
	subscribers.NewOnOrderPickedUp(orders, recipients, sender, c.logger).Subscribe(c.dispatcher)
	subscribers.NewOnOrderDelivered(orders, recipients, sender, c.logger).Subscribe(c.dispatcher)
	subscribers.NewOnOrderReturned(orders, recipients, sender, c.logger).Subscribe(c.dispatcher)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	var f commands.RecipientUoWFactory = FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendNotificationCommandHandler() commands.SendNotificationCommandHandler {
	return commands.NewSendNotificationCommandHandler(c.notificationUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReadNotificationCommandHandler() commands.ReadNotificationCommandHandler {
	return commands.NewReadNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetNearbyOrdersQueryHandler() queries.GetNearbyOrdersQueryHandler {
	return queries.NewGetNearbyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecipientNotificationsQueryHandler() queries.GetRecipientNotificationsQueryHandler {
	return queries.NewGetRecipientNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateRecipient:        c.CreateCreateRecipientCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		PickUpOrder:            c.CreatePickUpOrderCommandHandler(),
		DeliverOrder:           c.CreateDeliverOrderCommandHandler(),
		ReturnOrder:            c.CreateReturnOrderCommandHandler(),
		DeleteOrder:            c.CreateDeleteOrderCommandHandler(),
		ReadNotification:       c.CreateReadNotificationCommandHandler(),
		NearbyOrders:           c.CreateGetNearbyOrdersQueryHandler(),
		RecipientNotifications: c.CreateGetRecipientNotificationsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeReadNotificationsCommandHandler(),
		c.config.NotificationCleanupSchedule,
		c.config.NotificationRetention,
		c.logger,
	)
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
