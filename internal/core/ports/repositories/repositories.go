package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Inside UnitOfWork.Do every member shares the same store transaction.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	DocumentRepo   DocumentRepositoryFacade
	PeriodLockRepo PeriodLockRepositoryFacade
	AuditRepo      AuditRepositoryFacade
	SettingsRepo   SettingsRepositoryFacade
	TenantRepo     TenantRepositoryFacade
}
