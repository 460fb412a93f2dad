package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/lunar-api/internal/config"
	"github.com/zapponejosh/lunar-api/internal/database"
	"github.com/zapponejosh/lunar-api/internal/festival"
	"github.com/zapponejosh/lunar-api/internal/gridcache"
	"github.com/zapponejosh/lunar-api/internal/logger"
	"github.com/zapponejosh/lunar-api/internal/lunar"
	"github.com/zapponejosh/lunar-api/internal/metrics"
)

// MaxRangeDays bounds GET /api/v1/lunar/range, counting both ends.
const MaxRangeDays = 90

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db        *database.DB
	festivals *festival.Resolver
	grids     *gridcache.Cache
	metrics   *metrics.Metrics
	validate  *validator.Validate
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, grids *gridcache.Cache, m *metrics.Metrics, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		db:        db,
		festivals: festival.NewResolver(db),
		grids:     grids,
		metrics:   m,
		validate:  newValidator(),
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
	}
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"status": "healthy",
		"years":  []int{lunar.MinYear, lunar.MaxYear},
	})
}

// GetToday handles GET /api/v1/lunar/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeLunarDate(w, r, h.now())
}

// GetDate handles GET /api/v1/lunar/date/{date}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeLunarDate(w, r, date)
}

func (h *Handlers) writeLunarDate(w http.ResponseWriter, r *http.Request, t time.Time) {
	d, err := h.toLunar(t)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}

	resp := newLunarDateResponse(d)
	resp.Festivals = h.festivalNames(r, t)
	WriteSuccess(w, resp)
}

// festivalNames lists the festivals on t. Store failures are logged and
// yield no names; the conversion itself still succeeds.
func (h *Handlers) festivalNames(r *http.Request, t time.Time) []string {
	festivals, err := h.festivals.OnDate(r.Context(), t)
	if err != nil {
		h.log(r).Warn("failed to look up festivals",
			slog.String("date", t.Format(time.DateOnly)),
			slog.Any("error", err))
		return nil
	}

	names := make([]string, 0, len(festivals))
	for _, f := range festivals {
		names = append(names, f.Name)
	}
	return names
}

// GetRange handles GET /api/v1/lunar/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	startDate, err := parseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	endDate, err := parseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if startDate.After(endDate) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if int(endDate.Sub(startDate).Hours()/24)+1 > MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", MaxRangeDays))
		return
	}

	var days []LunarDateResponse
	for current := startDate; !current.After(endDate); current = current.AddDate(0, 0, 1) {
		d, err := h.toLunar(current)
		if err != nil {
			h.writeConversionError(w, r, err)
			return
		}
		days = append(days, newLunarDateResponse(d))
	}

	WriteSuccess(w, map[string]interface{}{
		"start": startStr,
		"end":   endStr,
		"days":  days,
	})
}

// GetGregorian handles GET /api/v1/gregorian?year=&month=&day=&leap=
func (h *Handlers) GetGregorian(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var nums [3]int
	for i, name := range []string{"year", "month", "day"} {
		n, err := strconv.Atoi(q.Get(name))
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("%s must be an integer", name))
			return
		}
		nums[i] = n
	}

	leap, err := parseLeap(q.Get("leap"))
	if err != nil {
		WriteBadRequest(w, "leap must be a boolean")
		return
	}

	d, err := lunar.FromLunar(nums[0], nums[1], nums[2], leap)
	h.metrics.ObserveConversion(metrics.ToGregorian, err)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}

	resp := newLunarDateResponse(d)
	resp.Festivals = h.festivalNames(r, d.Gregorian())
	WriteSuccess(w, resp)
}

// GetCalendar handles GET /api/v1/calendar/{year}/{month}
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		WriteBadRequest(w, "month must be between 1 and 12")
		return
	}

	grid, err := h.grids.Get(r.Context(), year, time.Month(month))
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}

	WriteSuccess(w, newGridResponse(grid))
}

// GetLunarMonth handles GET /api/v1/lunar/month/{year}/{month}?leap=
func (h *Handlers) GetLunarMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}

	leap, err := parseLeap(r.URL.Query().Get("leap"))
	if err != nil {
		WriteBadRequest(w, "leap must be a boolean")
		return
	}

	days, err := lunar.LunarMonth(year, month, leap)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"month": month,
		"leap":  leap.IsLeap(),
		"days":  newLunarDateResponses(days),
	})
}

// ListFestivals handles GET /api/v1/festivals?year=
//
// year is a lunar year and defaults to the lunar year of today.
func (h *Handlers) ListFestivals(w http.ResponseWriter, r *http.Request) {
	var year int
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			WriteBadRequest(w, "year must be an integer")
			return
		}
		year = y
	} else {
		today, err := h.toLunar(h.now())
		if err != nil {
			h.writeConversionError(w, r, err)
			return
		}
		year = today.Year()
	}

	occurrences, err := h.festivals.ResolveYear(r.Context(), year)
	if err != nil {
		h.writeConversionError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":      year,
		"festivals": newOccurrenceResponses(occurrences),
	})
}

// CreateFestival handles POST /api/v1/festivals
func (h *Handlers) CreateFestival(w http.ResponseWriter, r *http.Request) {
	var req CreateFestivalRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), CodeValidation)
		return
	}

	f := req.festival()
	if err := h.db.CreateFestival(r.Context(), f); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteError(w, http.StatusConflict, fmt.Sprintf("Festival %q already exists", req.Name), CodeDuplicate)
			return
		}
		h.log(r).Error("failed to create festival", slog.Any("error", err))
		WriteInternalError(w, "Failed to create festival")
		return
	}

	created, err := h.db.GetFestival(r.Context(), f.ID)
	if err != nil {
		h.log(r).Error("failed to reload festival", slog.Int64("id", f.ID), slog.Any("error", err))
		WriteInternalError(w, "Failed to create festival")
		return
	}

	WriteCreated(w, created)
}

// DeleteFestival handles DELETE /api/v1/festivals/{id}
func (h *Handlers) DeleteFestival(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "Invalid festival ID")
		return
	}

	if err := h.db.DeleteFestival(r.Context(), id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Festival not found")
			return
		}
		h.log(r).Error("failed to delete festival", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete festival")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Festival deleted"})
}

// NotFound answers unmatched routes with the standard envelope.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, "Route not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
}

// toLunar converts t and counts the conversion.
func (h *Handlers) toLunar(t time.Time) (lunar.LunarDate, error) {
	d, err := lunar.FromGregorian(t)
	h.metrics.ObserveConversion(metrics.ToLunar, err)
	return d, err
}

func (h *Handlers) writeConversionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.log(r).Debug("request abandoned", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Request cancelled", CodeCancelled)
		return
	}
	if !errors.Is(err, lunar.ErrOutOfRange) && !errors.Is(err, lunar.ErrInvalidLeapMonth) {
		h.log(r).Error("conversion failed", slog.Any("error", err))
	}
	WriteConversionError(w, err)
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// yearMonthParams reads the {year} and {month} URL parameters, writing a
// 400 response and returning ok=false when either is malformed.
func yearMonthParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "year must be an integer")
		return 0, 0, false
	}
	month, err = strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		WriteBadRequest(w, "month must be an integer")
		return 0, 0, false
	}
	return year, month, true
}

// parseDate parses a YYYY-MM-DD string as a UTC date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// parseLeap reads an optional boolean leap flag.
func parseLeap(s string) (lunar.LeapStatus, error) {
	if s == "" {
		return lunar.NotLeap, nil
	}
	leap, err := strconv.ParseBool(s)
	if err != nil {
		return lunar.NotLeap, err
	}
	if leap {
		return lunar.IsLeapMonth, nil
	}
	return lunar.NotLeap, nil
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
