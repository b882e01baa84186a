package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager       TransactionManager
	CustomerRepo    CustomerRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UserRepo        UserRepositoryFacade
	EmployeeRepo    EmployeeRepositoryFacade
	MeetingRepo     MeetingRepositoryFacade
	FeedbackRepo    FeedbackRepositoryFacade
	LogRepo         LogRepositoryFacade
}
