package cmd

import (
	"log/slog"

	"feedback/internal/adapters/out/postgres"
	"feedback/internal/core/application/usecases/commands"
	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	taskCache  queries.AvailableTasksCache
}

// NewCompositionRoot wires the adapters into the use case handlers.
// taskCache may be nil when Redis is not configured; the task board then
// reads straight from the database.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	taskCache queries.AvailableTasksCache,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		taskCache:  taskCache,
	}
}

func (c *CompositionRoot) CreateApproveMerchantCommandHandler() commands.ApproveMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveMerchantCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRejectMerchantCommandHandler() commands.RejectMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectMerchantCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkListingNonCompliantCommandHandler() commands.MarkListingNonCompliantCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkListingNonCompliantCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRemoveListingCommandHandler() commands.RemoveListingCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveListingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateExpireListingsCommandHandler(logger *slog.Logger) commands.ExpireListingsCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireListingsCommandHandler(f, c.notifier, logger)
}

func (c *CompositionRoot) CreateSetUserRoleCommandHandler() commands.SetUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserRoleCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSetUserActiveCommandHandler() commands.SetUserActiveCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserActiveCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptTaskCommandHandler() commands.AcceptTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptTaskCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartPickupCommandHandler() commands.StartPickupCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateClaimListingCommandHandler() commands.ClaimListingCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimListingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetMerchantsByStatusQueryHandler() queries.GetMerchantsByStatusQueryHandler {
	return queries.NewGetMerchantsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListingsQueryHandler() queries.GetListingsQueryHandler {
	return queries.NewGetListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableTasksQueryHandler() queries.GetAvailableTasksQueryHandler {
	return queries.NewGetAvailableTasksQueryHandler(c.gormDB, c.taskCache)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

type FuncMerchantUoWFactory func() commands.MerchantUoW

func (f FuncMerchantUoWFactory) Create() commands.MerchantUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
