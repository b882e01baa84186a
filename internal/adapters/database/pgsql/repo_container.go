package pgsql

import (
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a new RepositoryProvider with all repository implementations.
// Every repository shares one BaseRepository, so a transaction opened by TxManager is
// joined by any repository handed the same context.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		TxManager:       &base,
		CustomerRepo:    newPgxCustomerRepository(base),
		TransactionRepo: newPgxTransactionRepository(base),
		UserRepo:        newPgxUserRepository(base),
		EmployeeRepo:    newPgxEmployeeRepository(base),
		MeetingRepo:     &PgxMeetingRepository{BaseRepository: base},
		FeedbackRepo:    &PgxFeedbackRepository{BaseRepository: base},
		LogRepo:         &PgxLogRepository{BaseRepository: base},
	}
}
