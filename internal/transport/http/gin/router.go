package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lushstays/staygo/internal/calendar"
	"github.com/lushstays/staygo/internal/cart"
	"github.com/lushstays/staygo/internal/domain"
	"github.com/lushstays/staygo/internal/flow"
	"github.com/lushstays/staygo/internal/pricing"
	"github.com/lushstays/staygo/internal/repository"
	redisrepo "github.com/lushstays/staygo/internal/repository/redis"
	"github.com/lushstays/staygo/internal/service"
	"github.com/lushstays/staygo/internal/service/booking"
	"github.com/lushstays/staygo/internal/service/catalog"
	"github.com/lushstays/staygo/internal/session"
	"github.com/lushstays/staygo/internal/wizard"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	sessions *session.Manager,
	menu *cart.Menu,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	api := r.Group("/api")
	{
		api.GET("/locations", handleListLocations(svcs, logger))
		api.GET("/menu", handleGetMenu(menu))

		api.POST("/book", handleBook(svcs, idem, limiter, logger))
		api.POST("/send-confirmation", handleSendConfirmation(svcs))
		api.GET("/bookings/:id", handleGetBooking(svcs))
	}

	// Session-scoped booking flow
	sess := api.Group("/sessions")
	{
		sess.POST("", handleCreateSession(sessions))
		sess.GET("/:id", handleGetSession(sessions))

		sess.POST("/:id/location", handleSelectLocation(sessions, svcs))
		sess.GET("/:id/calendar/:which", handleCalendar(sessions))
		sess.POST("/:id/calendar/:which/next", handleShiftMonth(sessions, true))
		sess.POST("/:id/calendar/:which/prev", handleShiftMonth(sessions, false))
		sess.POST("/:id/dates/:which", handleSelectDate(sessions))
		sess.POST("/:id/times", handleSetTimes(sessions))
		sess.POST("/:id/advance", handleAdvance(sessions))
		sess.POST("/:id/back", handleBack(sessions))

		sess.POST("/:id/cart/items", handleAddCartItem(sessions))
		sess.DELETE("/:id/cart/items/:name", handleRemoveCartItem(sessions))

		sess.POST("/:id/checkout", handleCheckout(sessions))
		sess.POST("/:id/email", handleSendEmail(sessions))
		sess.POST("/:id/reset", handleResetSession(sessions))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List bookable locations
// @Success  200  {array}  domain.Location
// @Router   /api/locations [get]
func handleListLocations(svcs *service.Services, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := svcs.Catalog.List(c.Request.Context())
		if err != nil {
			// a dead catalog renders as an empty list, not an error page
			logger.Warn("catalog list failed", slog.Any("error", err))
			c.JSON(http.StatusOK, []domain.Location{})
			return
		}
		if locations == nil {
			locations = []domain.Location{}
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, locations, "public, max-age=60", true)
	}
}

// @Summary  Get restaurant menu
// @Param    category  query  string  false  "category filter"
// @Success  200  {object}  MenuResponse
// @Router   /api/menu [get]
func handleGetMenu(menu *cart.Menu) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := menu.FilterByCategory(c.Query("category"))
		if items == nil {
			items = []domain.MenuItem{}
		}
		resp := MenuResponse{
			Categories: menu.Categories(),
			Items:      items,
		}
		// ETag + Cache-Control 300s, the menu is static
		writeJSONWithCache(c, http.StatusOK, resp, "public, max-age=300", true)
	}
}

// @Summary  Create booking
// @Param    Idempotency-Key  header  string  false  "retry-safe submission key"
// @Param    req  body  BookRequest  true  "payload"
// @Success  201  {object}  BookResponse
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse
// @Failure  429  {object}  ErrorResponse
// @Router   /api/book [post]
func handleBook(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		bookingReq, ok := parseBookRequest(c, req)
		if !ok {
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		if limiter != nil {
			allowed, _, retryAfter, err := limiter.Allow(
				c.Request.Context(),
				"ip:"+c.ClientIP(),
			)
			if err != nil {
				// fail open, but leave a trace so a dead limiter is visible
				logger.Warn("rate limiter unavailable", slog.Any("error", err))
			}
			if err == nil && !allowed {
				if idemStorageKey != "" && idem != nil {
					_ = idem.Release(c.Request.Context(), idemStorageKey)
				}
				secs := int(retryAfter.Seconds()) + 1
				c.Header("Retry-After", strconv.Itoa(secs))
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: "rate limited"},
				)
				return
			}
		}

		bookingID, err := svcs.Booking.CreateBooking(c.Request.Context(), bookingReq)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := BookResponse{BookingID: bookingID.String()}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Send confirmation email
// @Param    req  body  SendConfirmationRequest  true  "payload"
// @Success  200  {object}  SendConfirmationResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /api/send-confirmation [post]
func handleSendConfirmation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendConfirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		checkIn, err := domain.ParseDate(req.CheckInDate)
		if err != nil {
			badRequest(c, "invalid check_in_date")
			return
		}
		checkOut, err := domain.ParseDate(req.CheckOutDate)
		if err != nil {
			badRequest(c, "invalid check_out_date")
			return
		}

		emailReq := domain.EmailRequest{
			BookingID:    req.BookingID,
			GuestName:    req.GuestName,
			Email:        req.Email,
			Location:     req.Location,
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			CheckInTime:  domain.TimeOfDay(req.CheckInTime),
			CheckOutTime: domain.TimeOfDay(req.CheckOutTime),
			Addons:       toCartLines(req.Addons),
			TotalAmount:  req.TotalAmount,
		}

		if err := svcs.Booking.SendConfirmationEmail(c.Request.Context(), emailReq); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, SendConfirmationResponse{Status: "sent"})
	}
}

// @Summary  Get booking
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200  {object}  BookingResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /api/bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid id")
			return
		}
		b, err := svcs.Booking.GetBooking(c.Request.Context(), id.String())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toBookingResponse(b))
	}
}

// --- session flow handlers ---

// @Summary  Start a booking session
// @Success  201  {object}  SessionResponse
// @Router   /api/sessions [post]
func handleCreateSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Create()
		c.JSON(http.StatusCreated, toSessionResponse(s.Snapshot()))
	}
}

// @Summary  Get session state
// @Param    id  path  string  true  "Session ID (uuid)"
// @Success  200  {object}  SessionResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /api/sessions/{id} [get]
func handleGetSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleSelectLocation(sessions *session.Manager, svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		var req SelectLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		loc, err := svcs.Catalog.GetByName(c.Request.Context(), req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		if err := s.SelectLocation(*loc); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

// @Summary  Render a month grid for one date selector
// @Param    id     path  string  true  "Session ID (uuid)"
// @Param    which  path  string  true  "checkin or checkout"
// @Success  200  {object}  CalendarResponse
// @Router   /api/sessions/{id}/calendar/{which} [get]
func handleCalendar(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		which, ok := parseWhich(c)
		if !ok {
			return
		}

		year, month, grid := s.CalendarGrid(which)

		days := make([]CalendarDayResponse, 0, len(grid))
		for _, d := range grid {
			day := CalendarDayResponse{
				Selectable: d.Selectable,
				Selected:   d.Selected,
			}
			if d.Date != nil {
				v := d.Date.String()
				day.Date = &v
			}
			days = append(days, day)
		}

		c.JSON(http.StatusOK, CalendarResponse{
			Year:  year,
			Month: int(month),
			Days:  days,
		})
	}
}

func handleShiftMonth(sessions *session.Manager, forward bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		which, ok := parseWhich(c)
		if !ok {
			return
		}
		if err := s.ShiftMonth(which, forward); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleSelectDate(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		which, ok := parseWhich(c)
		if !ok {
			return
		}
		var req SelectDateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			badRequest(c, "invalid date")
			return
		}
		if err := s.SelectDate(which, d); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleSetTimes(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		var req SetTimesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		err := s.SetTimes(
			domain.TimeOfDay(req.CheckInTime),
			domain.TimeOfDay(req.CheckOutTime),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleAdvance(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		if err := s.Advance(); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleBack(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		if err := s.Back(); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleAddCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := s.AddItem(req.Name); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

func handleRemoveCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		if err := s.RemoveItem(c.Param("name")); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

// @Summary  Submit the booking
// @Param    id   path  string           true  "Session ID (uuid)"
// @Param    req  body  CheckoutRequest  true  "payload"
// @Success  200  {object}  domain.BookingSummary
// @Failure  409  {object}  ErrorResponse
// @Failure  502  {object}  ErrorResponse
// @Router   /api/sessions/{id}/checkout [post]
func handleCheckout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		summary, err := s.Checkout(c.Request.Context(), req.GuestName, req.Email)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func handleSendEmail(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		// the body is optional, checkout details are the fallback
		var req SendEmailRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, err.Error())
				return
			}
		}
		if err := s.SendEmail(c.Request.Context(), req.GuestName, req.Email); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, SendConfirmationResponse{Status: "sent"})
	}
}

func handleResetSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := lookupSession(c, sessions)
		if !ok {
			return
		}
		if err := s.Reset(); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toSessionResponse(s.Snapshot()))
	}
}

// --- helpers ---

func lookupSession(c *gin.Context, sessions *session.Manager) (*flow.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid session id")
		return nil, false
	}
	s, ok := sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return nil, false
	}
	return s, true
}

func parseWhich(c *gin.Context) (wizard.Which, bool) {
	switch c.Param("which") {
	case string(wizard.CheckIn):
		return wizard.CheckIn, true
	case string(wizard.CheckOut):
		return wizard.CheckOut, true
	default:
		badRequest(c, "invalid selector, want checkin or checkout")
		return "", false
	}
}

func parseBookRequest(c *gin.Context, req BookRequest) (domain.BookingRequest, bool) {
	checkIn, err := domain.ParseDate(req.CheckInDate)
	if err != nil {
		badRequest(c, "invalid check_in_date")
		return domain.BookingRequest{}, false
	}
	checkOut, err := domain.ParseDate(req.CheckOutDate)
	if err != nil {
		badRequest(c, "invalid check_out_date")
		return domain.BookingRequest{}, false
	}

	checkInTime := domain.TimeOfDay(req.CheckInTime)
	if checkInTime == "" {
		checkInTime = domain.DefaultCheckInTime
	} else if !domain.ValidCheckInTime(checkInTime) {
		badRequest(c, "invalid check_in_time")
		return domain.BookingRequest{}, false
	}

	checkOutTime := domain.TimeOfDay(req.CheckOutTime)
	if checkOutTime == "" {
		checkOutTime = domain.DefaultCheckOutTime
	} else if !domain.ValidCheckOutTime(checkOutTime) {
		badRequest(c, "invalid check_out_time")
		return domain.BookingRequest{}, false
	}

	return domain.BookingRequest{
		GuestName:    req.GuestName,
		Email:        req.Email,
		Location:     req.Location,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		CheckInTime:  checkInTime,
		CheckOutTime: checkOutTime,
		Addons:       toCartLines(req.Addons),
	}, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// booking service
	case errors.Is(err, booking.ErrLocationUnknown):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "location not found"})
		return
	case errors.Is(err, booking.ErrLocationClosed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "location unavailable"})
		return
	case errors.Is(err, booking.ErrInvalidStay):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "check-out before check-in"})
		return
	case errors.Is(err, booking.ErrZeroNightStay):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "zero-night stay not allowed"})
		return
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	case errors.Is(err, booking.ErrGuestRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "guest name and email required"})
		return
	// catalog service
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	case errors.Is(err, catalog.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "catalog unavailable"})
		return
	// booking flow
	case errors.Is(err, flow.ErrWrongPhase):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "action not allowed in current phase"})
		return
	case errors.Is(err, flow.ErrSubmissionInFlight):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "submission in progress"})
		return
	case errors.Is(err, flow.ErrUnknownMenuItem):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "menu item not found"})
		return
	case errors.Is(err, flow.ErrGuestDetailsMissing):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "guest name and email required"})
		return
	case errors.Is(err, flow.ErrSubmissionFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "booking submission failed"})
		return
	// wizard and calendar
	case errors.Is(err, wizard.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "time is not an offered option"})
		return
	case errors.Is(err, calendar.ErrDayDisabled):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "day is not selectable"})
		return
	// pricing
	case errors.Is(err, pricing.ErrIncompleteDraft):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "booking draft incomplete"})
		return
	case errors.Is(err, pricing.ErrInvalidRange):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "check-out before check-in"})
		return
	case errors.Is(err, pricing.ErrZeroNightStay):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "zero-night stay not allowed"})
		return
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}
}
