package services

import (
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
)

// Dependencies are the outside collaborators the services need besides repositories.
type Dependencies struct {
	Attachments portssvc.AttachmentStore
	Events      utils.EventPublisher
	Clock       portssvc.Clock
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	clock := deps.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	container := &portssvc.ServiceContainer{}

	// Audit first, every other service writes through it
	container.Audit = NewAuditService(repos.LogRepo, deps.Events, clock)

	container.Interest = NewInterestService(
		repos.TxManager,
		repos.CustomerRepo,
		cfg.InterestRate,
		WithInterestClock(clock),
		WithInterestAuditSink(container.Audit),
		WithSweepConcurrency(cfg.InterestSweepConcurrency),
		WithAccrueOnBalanceChange(cfg.InterestAccrueOnBalanceChange),
	)

	container.Transaction = NewTransactionService(
		repos.TxManager,
		repos.CustomerRepo,
		repos.TransactionRepo,
		WithAttachmentStore(deps.Attachments),
		WithTransactionAuditSink(container.Audit),
		WithSavingsChangeListener(container.Interest),
		WithTransactionClock(clock),
	)

	container.Customer = NewCustomerService(
		repos.TxManager,
		repos.CustomerRepo,
		repos.UserRepo,
		cfg.DefaultUserPassword,
		WithCustomerAuditSink(container.Audit),
		WithCustomerClock(clock),
	)

	container.User = NewUserService(
		repos.UserRepo,
		WithProfilePictureStore(deps.Attachments),
		WithUserAuditSink(container.Audit),
		WithUserClock(clock),
	)

	container.Token = NewTokenService(cfg, clock)
	container.Employee = NewEmployeeService(repos.TxManager, repos.EmployeeRepo, repos.UserRepo, cfg.DefaultUserPassword, container.Audit, clock)
	container.Meeting = NewMeetingService(repos.MeetingRepo, container.Audit, clock)
	container.Feedback = NewFeedbackService(repos.FeedbackRepo, container.Audit, clock)

	return container
}
