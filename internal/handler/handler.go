package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bet-engine/internal/model"
	"bet-engine/internal/service"
)

type Handler struct {
	betService        service.BetService
	settlementService service.SettlementService
	logger            zerolog.Logger
}

func NewHandler(betService service.BetService, settlementService service.SettlementService, logger zerolog.Logger) *Handler {
	return &Handler{
		betService:        betService,
		settlementService: settlementService,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	bets := v1.Group("/bets")
	bets.POST("", h.PlaceBet)
	bets.GET("/:id", h.GetBet)
	bets.POST("/:id/cancel", h.CancelBet)
	bets.POST("/:id/settle", h.SettleBet)
	bets.GET("/user/:id", h.ListBets)

	events := v1.Group("/events")
	events.POST("/:id/settle", h.SettleEvent)
	events.GET("/:id/quote", h.Quote)

	users := v1.Group("/users")
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/ledger", h.GetLedger)
	users.GET("/:id/stats", h.GetStats)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrStakeBelowMinimum):
		status = http.StatusBadRequest
		code = "STAKE_BELOW_MINIMUM"
	case errors.Is(err, model.ErrStakeAboveMaximum):
		status = http.StatusBadRequest
		code = "STAKE_ABOVE_MAXIMUM"
	case errors.Is(err, model.ErrMarketClosed):
		status = http.StatusBadRequest
		code = "MARKET_CLOSED"
	case errors.Is(err, model.ErrInvalidStake):
		status = http.StatusBadRequest
		code = "INVALID_STAKE"
	case errors.Is(err, model.ErrInvalidOutcome), errors.Is(err, model.ErrInvalidBetState):
		status = http.StatusBadRequest
		code = "INVALID_OUTCOME"
	case errors.Is(err, model.ErrBetAlreadySettled):
		status = http.StatusConflict
		code = "ALREADY_SETTLED"
	case errors.Is(err, model.ErrCancellationWindowClosed):
		status = http.StatusConflict
		code = "CANCELLATION_WINDOW_CLOSED"
	case errors.Is(err, model.ErrConcurrentModification):
		status = http.StatusConflict
		code = "CONCURRENT_MODIFICATION"
		resp.Details = "Retry the request"
	case errors.Is(err, model.ErrRequestInFlight):
		status = http.StatusConflict
		code = "REQUEST_IN_FLIGHT"
	case errors.Is(err, model.ErrKeyOwnerMismatch), errors.Is(err, model.ErrDuplicateKey):
		status = http.StatusConflict
		code = "DUPLICATE_IDEMPOTENCY_KEY"
	case errors.Is(err, model.ErrAccountFrozen), errors.Is(err, model.ErrInvariantViolation):
		status = http.StatusConflict
		code = "ACCOUNT_FROZEN"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrBetNotFound):
		status = http.StatusNotFound
		code = "BET_NOT_FOUND"
	case errors.Is(err, model.ErrEventNotFound):
		status = http.StatusNotFound
		code = "EVENT_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
