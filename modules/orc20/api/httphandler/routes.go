package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/orc20")

	r.Get("/block", h.GetCurrentBlock)
	r.Get("/tokens", h.GetTokens)
	r.Get("/tokens/:id", h.GetTokenInfo)
	r.Get("/tokens/:id/holders", h.GetHolders)
	r.Get("/balances/wallet/:wallet", h.GetBalances)
	r.Get("/transactions", h.GetTransactions)
	r.Get("/transactions/:id", h.GetTransactionByID)
	r.Get("/outputs/:output", h.GetOutput)
	return nil
}
