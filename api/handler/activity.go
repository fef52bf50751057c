package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendago/backend/api/transport"
	"github.com/agendago/backend/domain"
	"github.com/agendago/backend/pkg/httpcontext"
	activityUC "github.com/agendago/backend/usecase/activity"
)

const maxTitleLength = 100

// ActivityHandler is the input boundary: it validates form constraints
// (title length, date presence, HH:MM time, enumerated values) before
// handing data to the store, which trusts its callers.
type ActivityHandler struct {
	baseHandler
	store *activityUC.Store
}

func NewActivityHandler(store *activityUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List activities
// @Tags activities
// @Router /api/v1/activities [get]
func (h *ActivityHandler) ListActivities(ctx *fasthttp.RequestCtx) {
	filter := domain.ActivityFilter{
		Status:     string(ctx.QueryArgs().Peek("status")),
		Category:   string(ctx.QueryArgs().Peek("category")),
		Priority:   string(ctx.QueryArgs().Peek("priority")),
		SearchTerm: string(ctx.QueryArgs().Peek("search")),
	}
	sortBy := domain.SortOption(ctx.QueryArgs().Peek("sort"))
	if sortBy == "" {
		sortBy = domain.SortDateAsc
	}

	activities := domain.FilterActivities(h.store.Activities(), filter)
	activities = domain.SortActivities(activities, sortBy)
	if activities == nil {
		activities = []domain.Activity{}
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Create activity
// @Tags activities
// @Router /api/v1/activities [post]
func (h *ActivityHandler) CreateActivity(ctx *fasthttp.RequestCtx) {
	var req transport.ActivityCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	form, msg := h.validateForm(req)
	if msg != "" {
		h.respondInvalid(ctx, msg)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created := h.store.Create(stdCtx, form)
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update activity
// @Tags activities
// @Router /api/v1/activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	var req transport.ActivityUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	patch, msg := h.validatePatch(req)
	if msg != "" {
		h.respondInvalid(ctx, msg)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.store.UpdatePartial(stdCtx, id, patch)
	h.respondSuccess(ctx, http.StatusOK, h.findActivity(id))
}

// @Summary Toggle activity status
// @Tags activities
// @Router /api/v1/activities/{id}/toggle [post]
func (h *ActivityHandler) ToggleActivity(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.store.ToggleStatus(stdCtx, id)
	h.respondSuccess(ctx, http.StatusOK, h.findActivity(id))
}

// @Summary Delete activity
// @Tags activities
// @Router /api/v1/activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing activity id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.store.Delete(stdCtx, id)
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Clear all activities
// @Tags activities
// @Router /api/v1/activities [delete]
func (h *ActivityHandler) ClearActivities(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.store.ClearAll(stdCtx)
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *ActivityHandler) findActivity(id string) *domain.Activity {
	for _, a := range h.store.Activities() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

func (h *ActivityHandler) validateForm(req transport.ActivityCreateRequest) (domain.ActivityFormData, string) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.ActivityFormData{}, "title is required"
	}
	if len([]rune(title)) > maxTitleLength {
		return domain.ActivityFormData{}, "title exceeds 100 characters"
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return domain.ActivityFormData{}, "a valid date is required"
	}
	if !validClock(req.Time) {
		return domain.ActivityFormData{}, "time must be HH:MM"
	}
	priority := domain.Priority(req.Priority)
	if priority.Rank() == 0 {
		return domain.ActivityFormData{}, "priority must be alta, media or baja"
	}
	if !validCategory(domain.Category(req.Category)) {
		return domain.ActivityFormData{}, "unknown category"
	}

	return domain.ActivityFormData{
		Title:       title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Priority:    priority,
		Category:    domain.Category(req.Category),
	}, ""
}

func (h *ActivityHandler) validatePatch(req transport.ActivityUpdateRequest) (domain.ActivityPatch, string) {
	var patch domain.ActivityPatch

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return patch, "title is required"
		}
		if len([]rune(title)) > maxTitleLength {
			return patch, "title exceeds 100 characters"
		}
		patch.Title = &title
	}
	if req.Description != nil {
		patch.Description = req.Description
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			return patch, "a valid date is required"
		}
		patch.Date = &date
	}
	if req.Time != nil {
		if !validClock(*req.Time) {
			return patch, "time must be HH:MM"
		}
		patch.Time = req.Time
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if priority.Rank() == 0 {
			return patch, "priority must be alta, media or baja"
		}
		patch.Priority = &priority
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		if !validCategory(category) {
			return patch, "unknown category"
		}
		patch.Category = &category
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		switch status {
		case domain.StatusPendiente, domain.StatusCompletado, domain.StatusVencido:
			patch.Status = &status
		default:
			return patch, "unknown status"
		}
	}
	return patch, ""
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

func validClock(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func validCategory(c domain.Category) bool {
	switch c {
	case domain.CategoryTrabajo, domain.CategoryPersonal, domain.CategorySalud, domain.CategoryEstudio, domain.CategoryHogar:
		return true
	default:
		return false
	}
}
