package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
	"github.com/tair/inventory-tracker/internal/ledger/repository"
	"github.com/tair/inventory-tracker/internal/ledger/usecase/command"
	"github.com/tair/inventory-tracker/internal/ledger/usecase/query"
)

// ProvideLedgerRepository provides the ledger repository (with tracing)
func ProvideLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return repository.NewGormLedgerRepositoryWithTracing(db)
}

// ProvideRecordMovementHandler provides the stock mutation coordinator
func ProvideRecordMovementHandler(repo domain.LedgerRepository) *command.RecordMovementHandler {
	return command.NewRecordMovementHandler(repo)
}

// ProvideListTransactionsHandler provides the history query handler
func ProvideListTransactionsHandler(repo domain.LedgerRepository) *query.ListTransactionsHandler {
	return query.NewListTransactionsHandler(repo)
}

// LedgerSet wires the full ledger module
var LedgerSet = wire.NewSet(
	ProvideLedgerRepository,
	ProvideRecordMovementHandler,
	ProvideListTransactionsHandler,
)
