package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendago/backend/api/transport"
	"github.com/agendago/backend/domain"
	"github.com/agendago/backend/pkg/httpcontext"
	activityUC "github.com/agendago/backend/usecase/activity"
)

// BackupHandler exposes the export/import surface of the persistence
// gateway through the store.
type BackupHandler struct {
	baseHandler
	store *activityUC.Store
}

func NewBackupHandler(store *activityUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Export the backup document
// @Tags backup
// @Router /api/v1/export [get]
func (h *BackupHandler) ExportData(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// The body is the literal backup JSON so it can be handed straight to a
	// file download.
	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="activities-backup.json"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBodyString(h.store.ExportData(stdCtx))
}

// @Summary Import a backup document
// @Tags backup
// @Router /api/v1/import [post]
func (h *BackupHandler) ImportData(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result := h.store.ImportData(stdCtx, string(ctx.PostBody()))
	if !result.Success {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), result.Message, result))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
