package main

// @title Inventory Tracker API
// @version 1.0
// @description Multi-tenant inventory tracker: accounts, items, stock movement ledger and dashboard statistics.

// @contact.name API Support
// @contact.url http://github.com/tair/inventory-tracker

// @license.name MIT
// @license.url https://github.com/tair/inventory-tracker/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Registration and login endpoints

// @tag.name Items
// @tag.description Item catalog endpoints

// @tag.name Transactions
// @tag.description Stock movement ledger endpoints

// @tag.name Dashboard
// @tag.description Dashboard statistics endpoints
