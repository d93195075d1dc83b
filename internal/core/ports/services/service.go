package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the handlers and the admin CLI.
type ServiceContainer struct {
	Account    AccountSvcFacade
	Document   DocumentSvcFacade
	Reversal   ReversalSvc
	PeriodLock PeriodLockSvcFacade
	Reporting  ReportingSvc
	Settings   SettingsSvcFacade
	Audit      AuditSvcFacade
	Tenant     TenantSvcFacade
}
