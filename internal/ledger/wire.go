//go:build wireinject
// +build wireinject

package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/ledger/delivery/http"
	"github.com/tair/inventory-tracker/kafka"
)

// InitializeHTTPHandler initializes the ledger HTTP handler with all
// dependencies. The publisher may be nil when events are disabled.
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) *http.LedgerHandler {
	wire.Build(
		LedgerSet,
		http.NewLedgerHandler,
	)
	return nil
}
