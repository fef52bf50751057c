package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendago/backend/api/transport"
	"github.com/agendago/backend/domain"
	"github.com/agendago/backend/pkg/httpcontext"
	activityUC "github.com/agendago/backend/usecase/activity"
	"github.com/agendago/backend/usecase/insight"
)

// InsightHandler serves the derived views: statistics, the notification
// summary and the calendar day lookup.
type InsightHandler struct {
	baseHandler
	store *activityUC.Store
}

func NewInsightHandler(store *activityUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Activity statistics
// @Tags insights
// @Router /api/v1/stats [get]
func (h *InsightHandler) GetStats(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.store.Stats())
}

// @Summary Notification summary
// @Tags insights
// @Router /api/v1/notifications [get]
func (h *InsightHandler) GetNotifications(ctx *fasthttp.RequestCtx) {
	activities := h.store.Activities()
	now := time.Now()

	payload := transport.NotificationsResponse{
		BadgeCount:   insight.BadgeCount(activities, now),
		ShouldNotify: insight.ShouldNotify(activities, now),
		Message:      insight.Message(activities, now),
		Priority:     emptyIfNil(insight.PriorityActivities(activities, insight.DefaultPriorityLimit)),
		Overdue:      emptyIfNil(domain.OverdueActivities(activities, now)),
		Today:        emptyIfNil(domain.TodayActivities(activities, now)),
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}

// @Summary Activities for a calendar day
// @Tags insights
// @Router /api/v1/calendar [get]
func (h *InsightHandler) GetCalendarDay(ctx *fasthttp.RequestCtx) {
	raw := string(ctx.QueryArgs().Peek("date"))
	day, ok := parseDate(raw)
	if !ok {
		h.respondInvalid(ctx, "date must be YYYY-MM-DD")
		return
	}

	activities := domain.ActivitiesForDate(h.store.Activities(), day)
	h.respondSuccess(ctx, http.StatusOK, emptyIfNil(activities))
}

// @Summary Upcoming activities
// @Tags insights
// @Router /api/v1/upcoming [get]
func (h *InsightHandler) GetUpcoming(ctx *fasthttp.RequestCtx) {
	days := ctx.QueryArgs().GetUintOrZero("days")
	if days <= 0 {
		days = 7
	}

	activities := domain.UpcomingActivities(h.store.Activities(), time.Now(), days)
	h.respondSuccess(ctx, http.StatusOK, emptyIfNil(activities))
}

func emptyIfNil(activities []domain.Activity) []domain.Activity {
	if activities == nil {
		return []domain.Activity{}
	}
	return activities
}
