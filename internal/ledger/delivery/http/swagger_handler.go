package http

// RecordMovement godoc
// @Summary Record a stock movement
// @Description Append a ledger entry and apply its signed delta to the item quantity atomically
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{item_id=int,type=string,quantity=int,notes=string} true "Movement data (type: in|out)"
// @Success 201 {object} object{message=string,id=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /transactions [post]
func (h *LedgerHandler) RecordMovementDoc() {}

// ListTransactions godoc
// @Summary List the caller's movement history
// @Description At most the 100 most recent entries, newest first, joined with item name and sku
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param itemId query int false "Filter to one item"
// @Success 200 {array} object
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactionsDoc() {}
