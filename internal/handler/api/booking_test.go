//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/handler/api"
	resdto "collective-lifecycle/internal/handler/dto/response"
	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/httptest"
	commandsmock "collective-lifecycle/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	redactor     shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.redactor = shared.ProActor(uuid.New(), user.RoleRedactor, nil)
	handler := api.NewBookingHandler(s.mockCommands)

	adage := s.router.Group("/adage", func(c *gin.Context) {
		middleware.SetActor(c, s.redactor)
		c.Next()
	})
	adage.POST("/stocks/:id/bookings", handler.Book)
	adage.POST("/bookings/:id/confirm", handler.Confirm)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestBook() {
	stockID := uuid.New()
	url := "/adage/stocks/" + stockID.String() + "/bookings"

	s.Run("success: 201 with location", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().BookStock(gomock.Any(), commands.BookStockRequest{
			StockID:    stockID,
			RedactorID: s.redactor.UserID,
		}).Return(&commands.BookStockResult{BookingID: bookingID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.BookingID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/adage/bookings/" + bookingID.String()})
	})

	s.Run("success: replayed key answers 200", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().BookStock(gomock.Any(), commands.BookStockRequest{
			StockID:        stockID,
			RedactorID:     s.redactor.UserID,
			IdempotencyKey: "key-1",
		}).Return(&commands.BookStockResult{BookingID: bookingID, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil,
			map[string]string{middleware.HeaderIdempotencyKey: "key-1"})

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsReplayed)
	})

	s.Run("error: 409 when the stock is taken or the key is in flight", func() {
		for _, err := range []error{commands.ErrStockNotBookable, commands.ErrDuplicateRequest} {
			s.mockCommands.EXPECT().BookStock(gomock.Any(), gomock.Any()).Return(nil, err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
		}
	})

	s.Run("error: 404 on unknown stock", func() {
		s.mockCommands.EXPECT().BookStock(gomock.Any(), gomock.Any()).Return(nil, commands.ErrStockNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Stock not found")
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	bookingID := uuid.New()
	url := "/adage/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.redactor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for another redactor's booking", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.redactor).Return(commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}
