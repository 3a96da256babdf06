package main

import (
	_ "github.com/dwarvesf/swiftchain-backend/docs"
	"github.com/dwarvesf/swiftchain-backend/internal/server"
)

// @title SwiftChain API
// @version 1.0
// @description INR to crypto conversion, fee comparison, transaction tracking and withdrawals.
// @BasePath /api/v1
func main() {
	server.Init()
}
