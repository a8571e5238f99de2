package api

import (
	"errors"
	"net/http"

	reqdto "rentloop/internal/handler/dto/request"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/handler/httperr"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/usecase/commands"
	"rentloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentals   commands.RentalCommands
	payments  commands.PaymentCommands
	handovers commands.HandoverCommands
	ratings   commands.RatingCommands
	chat      commands.ChatCommands
	q         queries.RentalQueries
}

func NewRentalHandler(
	rentals commands.RentalCommands,
	payments commands.PaymentCommands,
	handovers commands.HandoverCommands,
	ratings commands.RatingCommands,
	chat commands.ChatCommands,
	q queries.RentalQueries,
) *RentalHandler {
	return &RentalHandler{
		rentals:   rentals,
		payments:  payments,
		handovers: handovers,
		ratings:   ratings,
		chat:      chat,
		q:         q,
	}
}

// @Summary Request rental
// @Description Create a rental request (an open offer) for an item
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Create rental request"
// @Success 201 {object} resdto.CreateRentalResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.rentals.Create(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Create rental failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateRentalResponse{RentalID: result.RentalID})
}

// @Summary Get rental
// @Description Get a rental by ID (participants only); marks the other party's messages read
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), rentalID, userID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			status = http.StatusNotFound
		case errors.Is(err, queries.ErrRentalAccess):
			status = http.StatusForbidden
		}
		httperr.AbortWithError(c, status, err, "Failed to load rental", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary List rentals
// @Description List rentals where the authenticated user participates
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalListResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rentals", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": resdto.FromRentalList(items)})
}

// @Summary Accept rental
// @Description Lender accepts an open offer, committing the range into the item calendar
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/accept [post]
func (h *RentalHandler) Accept(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	if err := h.rentals.Accept(c.Request.Context(), rentalID, userID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Accept failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Decline rental
// @Description Lender declines an open offer
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/decline [post]
func (h *RentalHandler) Decline(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	if err := h.rentals.Decline(c.Request.Context(), rentalID, userID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Decline failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pay rental
// @Description Renter pays the rental and insurance total
// @Tags rentals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.PayRequest true "Pay request"
// @Success 204 "No Content"
// @Failure 402 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/pay [post]
func (h *RentalHandler) Pay(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.payments.Pay(c.Request.Context(), rentalID, userID, req.PaymentMethodID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Payment failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Payout rental
// @Description Lender collects the payout after the rental completed
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/payout [post]
func (h *RentalHandler) Payout(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	if err := h.payments.Payout(c.Request.Context(), rentalID, userID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Payout failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create handover
// @Description Record a pickup or return handover with pictures and a comment
// @Tags handovers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.CreateHandoverRequest true "Create handover request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/handovers [post]
func (h *RentalHandler) CreateHandover(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	var req reqdto.CreateHandoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.handovers.Create(c.Request.Context(), commands.CreateHandoverRequest{
		RentalID: rentalID,
		Type:     req.Type,
		Pictures: req.Pictures,
		Comment:  req.Comment,
	}, userID)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Create handover failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Accept handover
// @Description Agree to the handover of the given type
// @Tags handovers
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param type path string true "Handover type (pickup or return)"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/handovers/{type}/accept [post]
func (h *RentalHandler) AcceptHandover(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	if err := h.handovers.Accept(c.Request.Context(), rentalID, c.Param("type"), userID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Accept handover failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Decline handover
// @Description Reject the pending handover of the given type, clearing it
// @Tags handovers
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param type path string true "Handover type (pickup or return)"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/handovers/{type}/decline [post]
func (h *RentalHandler) DeclineHandover(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	if err := h.handovers.Decline(c.Request.Context(), rentalID, c.Param("type"), userID); err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Decline handover failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rate rental
// @Description File an item, renter, or lender rating for a completed rental
// @Tags ratings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.RateRequest true "Rate request"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/ratings [post]
func (h *RentalHandler) Rate(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	var req reqdto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.ratings.Rate(c.Request.Context(), commands.RateRequest{
		RentalID: rentalID,
		Kind:     req.Kind,
		Stars:    req.Stars,
		Text:     req.Text,
	}, userID)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Rating failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Post message
// @Description Post a chat message to the rental conversation
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.PostMessageRequest true "Post message request"
// @Success 201 {object} resdto.PostMessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rentals/{id}/messages [post]
func (h *RentalHandler) PostMessage(c *gin.Context) {
	rentalID, userID, ok := h.rentalCallerIDs(c)
	if !ok {
		return
	}
	var req reqdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	messageID, err := h.chat.PostMessage(c.Request.Context(), rentalID, userID, req.Text)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Post message failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.PostMessageResponse{MessageID: messageID})
}

func (h *RentalHandler) rentalCallerIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return rentalID, userID, true
}
