package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Transaction TransactionSvcFacade
	Interest    InterestSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	Employee    EmployeeSvcFacade
	Meeting     MeetingSvcFacade
	Feedback    FeedbackSvcFacade
	Audit       AuditSvcFacade
}
