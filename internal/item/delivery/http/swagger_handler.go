package http

// CreateItem godoc
// @Summary Create a new item
// @Description Create an item; SKU must be unique across the whole catalog
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,sku=string,category=string,quantity=int,min_stock=int,price=number,supplier=string} true "Item data"
// @Success 201 {object} object{message=string,id=int}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /items [post]
func (h *ItemHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List the caller's items
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object
// @Router /items [get]
func (h *ItemHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get one owned item
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object
// @Failure 404 {object} object{error=string}
// @Router /items/{id} [get]
func (h *ItemHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Replace an item's fields wholesale
// @Description Full-state PUT; a changed quantity synthesizes an adjustment ledger entry
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body object{name=string,sku=string,category=string,quantity=int,min_stock=int,price=number,supplier=string} true "Item data"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete an owned item
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItemDoc() {}

// LowStock godoc
// @Summary List items at or below their minimum stock level
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object
// @Router /items/alerts/low-stock [get]
func (h *ItemHandler) LowStockDoc() {}
