//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domrental "rentloop/internal/domain/rental"
	"rentloop/internal/handler/api"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/usecase/commands"
	"rentloop/internal/usecase/queries"
	"rentloop/tests/common/builder"
	"rentloop/tests/common/httptest"
	"rentloop/tests/common/testutil"
	commandsmock "rentloop/tests/mock/commands"
	queriesmock "rentloop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockRentals   *commandsmock.MockRentalCommands
	mockPayments  *commandsmock.MockPaymentCommands
	mockHandovers *commandsmock.MockHandoverCommands
	mockRatings   *commandsmock.MockRatingCommands
	mockChat      *commandsmock.MockChatCommands
	mockQueries   *queriesmock.MockRentalQueries
	handler       *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRentals = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockHandovers = commandsmock.NewMockHandoverCommands(s.mockCtrl)
	s.mockRatings = commandsmock.NewMockRatingCommands(s.mockCtrl)
	s.mockChat = commandsmock.NewMockChatCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockRentals, s.mockPayments, s.mockHandovers, s.mockRatings, s.mockChat, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		// Mock authenticated user
		c.Set("user_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.POST("/rentals", authMiddleware, s.handler.Create)
	s.router.GET("/rentals", authMiddleware, s.handler.List)
	s.router.GET("/rentals/:id", authMiddleware, s.handler.Get)
	s.router.POST("/rentals/:id/accept", authMiddleware, s.handler.Accept)
	s.router.POST("/rentals/:id/decline", authMiddleware, s.handler.Decline)
	s.router.POST("/rentals/:id/pay", authMiddleware, s.handler.Pay)
	s.router.POST("/rentals/:id/payout", authMiddleware, s.handler.Payout)
	s.router.POST("/rentals/:id/handovers", authMiddleware, s.handler.CreateHandover)
	s.router.POST("/rentals/:id/handovers/:type/accept", authMiddleware, s.handler.AcceptHandover)
	s.router.POST("/rentals/:id/handovers/:type/decline", authMiddleware, s.handler.DeclineHandover)
	s.router.POST("/rentals/:id/ratings", authMiddleware, s.handler.Rate)
	s.router.POST("/rentals/:id/messages", authMiddleware, s.handler.PostMessage)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

type testCaseRental struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/rentals"

	rb := builder.NewRentalBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	expectedResult := &commands.CreateRentalResult{RentalID: rb.ID}

	missing := []testCaseRental{
		{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: insurance (required)", mutate: testutil.Field("insurance", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockRentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateRentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rb.ID, body.RentalID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "item not found", commandsError: commands.ErrItemNotFound, expectedStatus: http.StatusNotFound},
			{name: "renting own item", commandsError: commands.ErrOwnItem, expectedStatus: http.StatusForbidden},
			{name: "domain validation error", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusBadRequest},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RentalHandlerTestSuite) TestGet() {
	rb := builder.NewRentalBuilder().AsPaid()
	url := "/rentals/" + rb.ID.String()

	s.Run("success: returns the participant view", func() {
		view := rb.BuildView(domrental.RoleRenter)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rb.ID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		if diff := cmp.Diff(*resdto.FromRentalView(view), body); diff != "" {
			s.Failf("response mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: 404 Not Found for unknown rental", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rb.ID, gomock.Any()).
			Return(nil, queries.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to load rental")
	})

	s.Run("error: 403 Forbidden for non-participants", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rb.ID, gomock.Any()).
			Return(nil, queries.ErrRentalAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental id")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *RentalHandlerTestSuite) TestList() {
	url := "/rentals"

	s.Run("success: returns rentals for both roles", func() {
		asRenter := builder.NewRentalBuilder().AsPaid().BuildListItem(domrental.RoleRenter)
		asLender := builder.NewRentalBuilder().BuildListItem(domrental.RoleLender)
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return([]*queries.RentalListItem{asRenter, asLender}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Rentals []resdto.RentalListResponse `json:"rentals"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Rentals, 2)
		s.Equal(asRenter.ID, body.Rentals[0].ID)
		s.Equal("renter", body.Rentals[0].Role)
		s.Equal("lender", body.Rentals[1].Role)
	})

	s.Run("success: empty list stays an array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any()).
			Return([]*queries.RentalListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"rentals":[]`)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestAccept / TestDecline
// ================================================================================

func (s *RentalHandlerTestSuite) TestAccept() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/accept"

	s.Run("success: returns 204 No Content", func() {
		s.mockRentals.EXPECT().Accept(gomock.Any(), rentalID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "rental not found", commandsError: commands.ErrRentalNotFound, expectedStatus: http.StatusNotFound},
			{name: "caller is not the lender", commandsError: commands.ErrLenderOnly, expectedStatus: http.StatusForbidden},
			{name: "offer no longer open", commandsError: commands.ErrNotOpenOffer, expectedStatus: http.StatusConflict},
			{name: "calendar conflict", commandsError: commands.ErrAvailabilityConflict, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRentals.EXPECT().Accept(gomock.Any(), rentalID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Accept failed")
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestDecline() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/decline"

	s.Run("success: returns 204 No Content", func() {
		s.mockRentals.EXPECT().Decline(gomock.Any(), rentalID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when offer is not open", func() {
		s.mockRentals.EXPECT().Decline(gomock.Any(), rentalID, gomock.Any()).
			Return(commands.ErrNotOpenOffer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Decline failed")
	})
}

// ================================================================================
// TestPay / TestPayout
// ================================================================================

func (s *RentalHandlerTestSuite) TestPay() {
	rentalID := uuid.New()
	methodID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/pay"
	reqBody := map[string]any{"paymentMethodId": methodID.String()}

	s.Run("success: returns 204 No Content", func() {
		s.mockPayments.EXPECT().Pay(gomock.Any(), rentalID, gomock.Any(), methodID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request without a payment method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "charge declined", commandsError: commands.ErrChargeDeclined, expectedStatus: http.StatusPaymentRequired},
			{name: "already paid", commandsError: commands.ErrAlreadyPaid, expectedStatus: http.StatusConflict},
			{name: "caller is not the renter", commandsError: commands.ErrRenterOnly, expectedStatus: http.StatusForbidden},
			{name: "method belongs to someone else", commandsError: commands.ErrNotMethodOwner, expectedStatus: http.StatusForbidden},
			{name: "payment method not found", commandsError: commands.ErrPaymentMethodNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPayments.EXPECT().Pay(gomock.Any(), rentalID, gomock.Any(), methodID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Payment failed")
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestPayout() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/payout"

	s.Run("success: returns 204 No Content", func() {
		s.mockPayments.EXPECT().Payout(gomock.Any(), rentalID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict before the renter paid", func() {
		s.mockPayments.EXPECT().Payout(gomock.Any(), rentalID, gomock.Any()).
			Return(commands.ErrPayoutBeforePayment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Payout failed")
	})

	s.Run("error: 403 Forbidden for the renter", func() {
		s.mockPayments.EXPECT().Payout(gomock.Any(), rentalID, gomock.Any()).
			Return(commands.ErrLenderOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Payout failed")
	})
}

// ================================================================================
// TestCreateHandover
// ================================================================================

func (s *RentalHandlerTestSuite) TestCreateHandover() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/handovers"
	reqBody := map[string]any{
		"type":     "pickup",
		"pictures": []string{"front.jpg", "side.jpg"},
		"comment":  "small scratch on the left side",
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockHandovers.EXPECT().
			Create(gomock.Any(), commands.CreateHandoverRequest{
				RentalID: rentalID,
				Type:     "pickup",
				Pictures: []string{"front.jpg", "side.jpg"},
				Comment:  "small scratch on the left side",
			}, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request without a type", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("type", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "handover already recorded", commandsError: commands.ErrHandoverExists, expectedStatus: http.StatusConflict},
			{name: "rental not ready for handover", commandsError: commands.ErrHandoverNotReady, expectedStatus: http.StatusConflict},
			{name: "caller is not a participant", commandsError: commands.ErrNotParticipant, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockHandovers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Create handover failed")
			})
		}
	})
}

// ================================================================================
// TestAcceptHandover / TestDeclineHandover
// ================================================================================

func (s *RentalHandlerTestSuite) TestAcceptHandover() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/handovers/return/accept"

	s.Run("success: passes the type from the path", func() {
		s.mockHandovers.EXPECT().Accept(gomock.Any(), rentalID, "return", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when already agreed", func() {
		s.mockHandovers.EXPECT().Accept(gomock.Any(), rentalID, "return", gomock.Any()).
			Return(commands.ErrHandoverAlreadyAgreed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Accept handover failed")
	})
}

func (s *RentalHandlerTestSuite) TestDeclineHandover() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/handovers/pickup/decline"

	s.Run("success: passes the type from the path", func() {
		s.mockHandovers.EXPECT().Decline(gomock.Any(), rentalID, "pickup", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when nothing is pending", func() {
		s.mockHandovers.EXPECT().Decline(gomock.Any(), rentalID, "pickup", gomock.Any()).
			Return(commands.ErrHandoverNotReady).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Decline handover failed")
	})
}

// ================================================================================
// TestRate
// ================================================================================

func (s *RentalHandlerTestSuite) TestRate() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/ratings"
	reqBody := map[string]any{"kind": "item", "stars": 4, "text": "solid drill"}

	bound := []testCaseRental{
		{name: "stars boundary OK (1)", mutate: testutil.Field("stars", 1), expectCode: http.StatusNoContent},
		{name: "stars boundary OK (5)", mutate: testutil.Field("stars", 5), expectCode: http.StatusNoContent},
		{name: "stars boundary invalid (0)", mutate: testutil.Field("stars", 0), expectCode: http.StatusBadRequest},
		{name: "stars boundary invalid (6)", mutate: testutil.Field("stars", 6), expectCode: http.StatusBadRequest},
		{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockRatings.EXPECT().
			Rate(gomock.Any(), commands.RateRequest{
				RentalID: rentalID,
				Kind:     "item",
				Stars:    4,
				Text:     "solid drill",
			}, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range bound {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusNoContent {
					s.mockRatings.EXPECT().Rate(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusNoContent {
					s.Equal(http.StatusNoContent, rec.Code)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "slot already filled", commandsError: commands.ErrRatingSlotTaken, expectedStatus: http.StatusConflict},
			{name: "wrong rater role", commandsError: commands.ErrWrongRaterRole, expectedStatus: http.StatusForbidden},
			{name: "unknown rating kind", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRatings.EXPECT().Rate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Rating failed")
			})
		}
	})
}

// ================================================================================
// TestPostMessage
// ================================================================================

func (s *RentalHandlerTestSuite) TestPostMessage() {
	rentalID := uuid.New()
	messageID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/messages"
	reqBody := map[string]any{"text": "is Friday morning fine for pickup?"}

	s.Run("success: returns 201 Created with the message id", func() {
		s.mockChat.EXPECT().PostMessage(gomock.Any(), rentalID, gomock.Any(), "is Friday morning fine for pickup?").
			Return(messageID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PostMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(messageID, body.MessageID)
	})

	s.Run("error: 400 Bad Request without text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 Forbidden for outsiders", func() {
		s.mockChat.EXPECT().PostMessage(gomock.Any(), rentalID, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Post message failed")
	})

	s.Run("error: 400 Bad Request for oversized text rejected downstream", func() {
		s.mockChat.EXPECT().PostMessage(gomock.Any(), rentalID, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		requestMap := map[string]any{"text": strings.Repeat("a", 2001)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Post message failed")
	})
}
