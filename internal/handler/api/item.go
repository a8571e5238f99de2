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

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Description List a new item for rent
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.CreateItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	itemID, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Create item failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateItemResponse{ItemID: itemID})
}

// @Summary Get item
// @Description Get an item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, queries.ErrItemNotFound) {
			status = http.StatusNotFound
		}
		httperr.AbortWithError(c, status, err, "Failed to load item", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List items owned by the authenticated user
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ItemResponse
// @Failure 401 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByLender(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list items", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": resdto.FromItemList(views)})
}

// @Summary Register payment method
// @Description Store a payment method for the authenticated user
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterPaymentMethodRequest true "Register payment method request"
// @Success 201 {object} resdto.RegisterPaymentMethodResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /payment-methods [post]
func (h *ItemHandler) RegisterPaymentMethod(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.RegisterPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	methodID, err := h.cmds.RegisterPaymentMethod(c.Request.Context(), userID, req.ProviderToken)
	if err != nil {
		httperr.AbortWithError(c, statusOf(err), err, "Register payment method failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterPaymentMethodResponse{PaymentMethodID: methodID})
}
