package routes

import (
	"seguros_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.RegisterClaim)
		claims.GET("/:transaction_id/status", claimHandler.GetStatus)
		claims.POST("/:transaction_id/process", claimHandler.ProcessClaim)
		claims.POST("/:transaction_id/decision", claimHandler.OverrideDecision)
		claims.POST("/:transaction_id/payout", claimHandler.ProcessPayout)
		claims.POST("/:transaction_id/close", claimHandler.CloseClaim)
	}
}
