//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/handler/api"
	resdto "collective-lifecycle/internal/handler/dto/response"
	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/builder"
	"collective-lifecycle/tests/common/httptest"
	commandsmock "collective-lifecycle/tests/mock/commands"
	queriesmock "collective-lifecycle/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	engine       *collective.Engine
	actor        shared.Actor
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.engine = collective.NewEngine(config.NewTestConfig().Lifecycle.Settings())
	offererID := builder.DefaultOffererID
	s.actor = shared.ProActor(uuid.New(), user.RolePro, &offererID)
	handler := api.NewOfferHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	offers := s.router.Group("/offers", authMiddleware)
	offers.GET("", handler.List)
	offers.GET("/:id", handler.Get)
	offers.PATCH("/archive", handler.Archive)
	offers.PATCH("/:id/publish", handler.Publish)
	offers.PATCH("/:id/dates", handler.EditDates)
	offers.POST("/:id/cancel", handler.Cancel)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestGet() {
	s.Run("success: returns the derived read model in camelCase", func() {
		offer := builder.NewOfferBuilder().WithBooking(collective.BookingConfirmed, time.Hour)
		view := offer.BuildView(s.engine)
		s.mockQueries.EXPECT().Get(gomock.Any(), offer.OfferID, s.actor).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+offer.OfferID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("BOOKED", body["displayedStatus"])
		s.Equal([]any{"CAN_EDIT_DISCOUNT", "CAN_DUPLICATE", "CAN_CANCEL"}, body["allowedActions"])
		s.Equal(true, body["isSoldOut"])
		s.Equal(false, body["isPublicApi"])
		booking, ok := body["booking"].(map[string]any)
		s.Require().True(ok)
		s.Equal("CONFIRMED", booking["status"])
		stock, ok := body["stock"].(map[string]any)
		s.Require().True(ok)
		s.Equal(offer.StockID.String(), stock["id"])
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
			code   string
		}{
			{"not found", errs.Mark(errors.New("no rows"), queries.ErrOfferNotFound), http.StatusNotFound, "Offer not found", "OFFER_NOT_FOUND"},
			{"forbidden", queries.ErrForbidden, http.StatusForbidden, "Access denied", "FORBIDDEN"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error", ""},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				id := uuid.New()
				s.mockQueries.EXPECT().Get(gomock.Any(), id, s.actor).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+id.String(), nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
				httptest.AssertErrorCode(s.T(), rec, tc.code)
			})
		}
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+uuid.NewString(), nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *OfferHandlerTestSuite) TestList() {
	s.Run("success: forwards filters and returns the next cursor", func() {
		views := []*queries.OfferView{builder.NewOfferBuilder().BuildView(s.engine)}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), s.actor).DoAndReturn(
			func(_ any, f queries.OfferFilter, _ shared.Actor) ([]*queries.OfferView, *queries.Cursor, error) {
				s.Equal([]collective.DisplayedStatus{collective.StatusActive, collective.StatusBooked}, f.Statuses)
				s.Equal(5, f.Limit)
				s.Require().NotNil(f.SoldOut)
				s.False(*f.SoldOut)
				return views, &queries.Cursor{After: "next"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/offers?status=ACTIVE&status=BOOKED&limit=5&soldOut=false", nil, "bearer-token")

		var body resdto.OfferListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Offers, 1)
		s.Equal("ACTIVE", body.Offers[0].DisplayedStatus)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?status=SOLD", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 403 for another offerer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), s.actor).Return(nil, nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?offererId="+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *OfferHandlerTestSuite) TestArchive() {
	s.Run("success: 204", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().ArchiveOffers(gomock.Any(), ids, s.actor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/offers/archive", map[string]any{"ids": ids}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on empty ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/offers/archive", map[string]any{"ids": []string{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 carries the refusing offer as detail", func() {
		id := uuid.New()
		err := errs.WithDetail(errs.Mark(collective.ErrActionNotAllowed, commands.ErrActionNotAllowed), "offer "+id.String())
		s.mockCommands.EXPECT().ArchiveOffers(gomock.Any(), []uuid.UUID{id}, s.actor).Return(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/offers/archive", map[string]any{"ids": []uuid.UUID{id}}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Action not allowed")
		s.Contains(rec.Body.String(), id.String())
	})
}

func (s *OfferHandlerTestSuite) TestPublish() {
	s.Run("success: returns the refreshed offer", func() {
		offer := builder.NewOfferBuilder().WithValidation(collective.ValidationPending)
		s.mockCommands.EXPECT().PublishOffer(gomock.Any(), offer.OfferID, s.actor).Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), offer.OfferID, s.actor).Return(offer.BuildView(s.engine), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/offers/"+offer.OfferID.String()+"/publish", nil, "bearer-token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PENDING", body.DisplayedStatus)
	})
}

func (s *OfferHandlerTestSuite) TestEditDates() {
	offer := builder.NewOfferBuilder()
	url := "/offers/" + offer.OfferID.String() + "/dates"
	beginning := builder.DefaultNow.Add(10 * 24 * time.Hour)

	s.Run("success: passes only the provided dates", func() {
		s.mockCommands.EXPECT().EditOfferDates(gomock.Any(), offer.OfferID, gomock.Any(), s.actor).DoAndReturn(
			func(_ any, _ uuid.UUID, req commands.EditDatesRequest, _ shared.Actor) error {
				s.Require().NotNil(req.BeginningDatetime)
				s.True(beginning.Equal(*req.BeginningDatetime))
				s.Nil(req.EndDatetime)
				s.Nil(req.BookingLimitDatetime)
				return nil
			})
		s.mockQueries.EXPECT().Get(gomock.Any(), offer.OfferID, s.actor).Return(offer.BuildView(s.engine), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"beginningDatetime": beginning}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when no date is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No date to update")
	})

	s.Run("error: 400 on inconsistent dates", func() {
		s.mockCommands.EXPECT().EditOfferDates(gomock.Any(), offer.OfferID, gomock.Any(), s.actor).
			Return(errs.Mark(collective.ErrInvalidDates, commands.ErrInvalidDates))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"beginningDatetime": beginning}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid dates")
	})
}

func (s *OfferHandlerTestSuite) TestCancel() {
	offer := builder.NewOfferBuilder()
	url := "/offers/" + offer.OfferID.String() + "/cancel"

	s.Run("success: returns the cancelled offer", func() {
		cancelled := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.OfferID = offer.OfferID }).
			WithCancelledBooking(collective.ReasonOfferer, time.Hour)
		s.mockCommands.EXPECT().CancelOffer(gomock.Any(), offer.OfferID, s.actor).Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), offer.OfferID, s.actor).Return(cancelled.BuildView(s.engine), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Booking)
		s.Require().NotNil(body.Booking.CancellationReason)
		s.Equal("OFFERER", *body.Booking.CancellationReason)
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"action not allowed", commands.ErrActionNotAllowed, http.StatusUnprocessableEntity},
			{"used booking", commands.ErrNotCancellable, http.StatusUnprocessableEntity},
			{"no live booking", commands.ErrNoLiveBooking, http.StatusUnprocessableEntity},
			{"unknown offer", commands.ErrOfferNotFound, http.StatusNotFound},
			{"other offerer", commands.ErrForbidden, http.StatusForbidden},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelOffer(gomock.Any(), offer.OfferID, s.actor).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}
