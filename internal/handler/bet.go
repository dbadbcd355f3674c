package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bet-engine/internal/model"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: name + " must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return id, true
}

func requireUserID(c *gin.Context) (int64, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "user_id must be a positive integer",
			Code:  "INVALID_REQUEST",
		})
		return 0, false
	}
	return userID, true
}

// PlaceBet
// @Summary Place a bet
// @Description Stakes funds on an event outcome at current odds. Retries with the same idempotency key replay the original result.
// @Tags bets
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param bet body model.PlaceBetRequest true "Bet details"
// @Success 200 {object} model.BetResponse "Already processed"
// @Success 201 {object} model.BetResponse "Placed"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.betService.PlaceBet(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Status == "already_processed" {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// CancelBet
// @Summary Cancel a pending bet
// @Description Refunds the stake and moves the bet to CANCELLED. Only pending bets on still-open events can be cancelled.
// @Tags bets
// @Accept json
// @Produce json
// @Param id path int true "Bet ID"
// @Param user_id query int true "User ID"
// @Param cancellation body model.CancelBetRequest true "Cancellation details"
// @Success 200 {object} model.BetResponse
// @Failure 404 {object} model.ErrorResponse "Bet not found"
// @Failure 409 {object} model.ErrorResponse "Already settled or window closed"
// @Router /bets/{id}/cancel [post]
func (h *Handler) CancelBet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	betID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.CancelBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.betService.CancelBet(c.Request.Context(), userID, betID, req.IdempotencyKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBet
// @Summary Get a bet
// @Tags bets
// @Produce json
// @Param id path int true "Bet ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} model.Bet
// @Failure 404 {object} model.ErrorResponse "Bet not found"
// @Router /bets/{id} [get]
func (h *Handler) GetBet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	betID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bet, err := h.betService.GetBet(c.Request.Context(), userID, betID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, bet)
}

// ListBets
// @Summary List a user's bets
// @Description Returns the user's bets, newest first, optionally filtered by state, outcome and placement date range.
// @Tags bets
// @Produce json
// @Param id path int true "User ID"
// @Param state query string false "Bet state" Enums(pending, won, lost, cancelled)
// @Param outcome query string false "Outcome" Enums(home, draw, away)
// @Param from query string false "Placed from (RFC 3339)"
// @Param to query string false "Placed to (RFC 3339)"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.BetListResponse
// @Failure 400 {object} model.ErrorResponse "Bad filter"
// @Router /bets/user/{id} [get]
func (h *Handler) ListBets(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	filter, ok := parseBetFilter(c)
	if !ok {
		return
	}

	bets, err := h.betService.ListBets(c.Request.Context(), userID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BetListResponse{
		Bets:   bets,
		Total:  len(bets),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

func parseBetFilter(c *gin.Context) (model.BetFilter, bool) {
	filter := model.BetFilter{}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	badFilter := func(msg string) (model.BetFilter, bool) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg, Code: "INVALID_REQUEST"})
		return filter, false
	}

	if raw := c.Query("state"); raw != "" {
		state, err := model.ParseBetState(raw)
		if err != nil {
			return badFilter("invalid state filter")
		}
		filter.State = &state
	}
	if raw := c.Query("outcome"); raw != "" {
		outcome, err := model.ParseOutcome(raw)
		if err != nil {
			return badFilter("invalid outcome filter")
		}
		filter.Outcome = &outcome
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badFilter("from must be RFC 3339")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badFilter("to must be RFC 3339")
		}
		filter.To = &to
	}
	return filter, true
}

// SettleBet
// @Summary Settle a bet
// @Description Applies the actual outcome to one bet. Invoked by the settlement trigger, not end users. Settling a terminal bet is a no-op.
// @Tags settlement
// @Accept json
// @Produce json
// @Param id path int true "Bet ID"
// @Param settlement body model.SettleBetRequest true "Actual outcome"
// @Success 200 {object} model.BetResponse
// @Failure 404 {object} model.ErrorResponse "Bet not found"
// @Router /bets/{id}/settle [post]
func (h *Handler) SettleBet(c *gin.Context) {
	betID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	result, err := model.ParseOutcome(req.Result)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.settlementService.SettleBet(c.Request.Context(), betID, result)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SettleEvent
// @Summary Settle all pending bets on an event
// @Tags settlement
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param settlement body model.SettleBetRequest true "Actual outcome"
// @Success 200 {object} model.SettleEventResponse
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Router /events/{id}/settle [post]
func (h *Handler) SettleEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	result, err := model.ParseOutcome(req.Result)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.settlementService.SettleEvent(c.Request.Context(), eventID, result)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Quote
// @Summary Quote a potential payout
// @Description Computes stake times current odds without placing a bet.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param outcome query string true "Outcome" Enums(home, draw, away)
// @Param stake query string true "Stake amount"
// @Success 200 {object} model.QuoteResponse
// @Failure 404 {object} model.ErrorResponse "Event not found"
// @Router /events/{id}/quote [get]
func (h *Handler) Quote(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.betService.Quote(c.Request.Context(), eventID, c.Query("outcome"), c.Query("stake"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBalance
// @Summary Get user balance
// @Description Returns the current available balance for a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Account not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.betService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLedger
// @Summary Get user transaction log
// @Description Returns a paginated list of ledger entries for a user, newest first
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.LedgerListResponse
// @Router /users/{id}/ledger [get]
func (h *Handler) GetLedger(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.betService.GetLedger(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LedgerListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	})
}

// GetStats
// @Summary Get user betting stats
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserStats
// @Router /users/{id}/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.betService.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
