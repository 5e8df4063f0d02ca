package cmd

import (
	"time"

	"pickup/internal/adapters/out/postgres"
	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	assetStore ports.AssetStore
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	dispatcher ports.NotificationDispatcher,
	assetStore ports.AssetStore,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		assetStore: assetStore,
	}
}

func (c *CompositionRoot) CreateAddParcelCommandHandler() commands.AddParcelCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateGeneratePickupOtpCommandHandler() commands.GeneratePickupOtpCommandHandler {
	var f commands.OtpUoWFactory = FuncOtpUoWFactory(func() commands.OtpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGeneratePickupOtpCommandHandler(
		f, c.configs.OtpLength, time.Duration(c.configs.OtpValidMinutes)*time.Minute)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.OtpUoWFactory = FuncOtpUoWFactory(func() commands.OtpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckStorageExpirationCommandHandler() (commands.CheckStorageExpirationCommandHandler, error) {
	policy, err := services.NewExpirationPolicy(c.configs.StorageExpirationDays, c.configs.StorageWarningDays)
	if err != nil {
		return commands.CheckStorageExpirationCommandHandler{}, err
	}

	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckStorageExpirationCommandHandler(f, policy, c.dispatcher), nil
}

func (c *CompositionRoot) CreateFlagParcelProblemCommandHandler() commands.FlagParcelProblemCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagParcelProblemCommandHandler(f)
}

func (c *CompositionRoot) CreateResumeParcelCommandHandler() commands.ResumeParcelCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitCustomerReportCommandHandler() commands.SubmitCustomerReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCustomerReportCommandHandler(f)
}

func (c *CompositionRoot) CreateLinkCustomerReportCommandHandler() commands.LinkCustomerReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLinkCustomerReportCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateQrCheckinCommandHandler() (commands.GenerateQrCheckinCommandHandler, error) {
	return commands.NewGenerateQrCheckinCommandHandler(c.configs.CheckinBaseURL, c.assetStore)
}

func (c *CompositionRoot) CreateGetParcelDetailsQueryHandler() queries.GetParcelDetailsQueryHandler {
	return queries.NewGetParcelDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportFeedQueryHandler() queries.GetReportFeedQueryHandler {
	return queries.NewGetReportFeedQueryHandler(c.gormDB)
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncOtpUoWFactory func() commands.OtpUoW

func (f FuncOtpUoWFactory) Create() commands.OtpUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}
