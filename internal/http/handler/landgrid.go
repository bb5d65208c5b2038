package handler

import (
	"encoding/json"
	"errors"
	"landgrid/internal/core"
	"landgrid/internal/http/handler/middleware"
	"landgrid/internal/http/payload"
	"landgrid/internal/signature"
	"landgrid/internal/store"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	SubmitPurchase  = "POST /landgrid/purchases"
	ConfirmPurchase = "POST /landgrid/purchases/confirm"
	ClaimItem       = "POST /landgrid/claims"
	ClaimedSecret   = "POST /landgrid/claims/secret"
	CreateDrop      = "POST /landgrid/drops"
	ConfirmDrop     = "POST /landgrid/drops/confirm"
	UpdateParcels   = "POST /landgrid/parcels/update"
	GetViewport     = "GET /landgrid/parcels"
	GetStats        = "GET /landgrid/stats"
)

type GridHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	purchases        PurchaseService
	claims           ClaimService
	drops            DropService
	lands            LandService
	grid             GridService
}

func NewGridHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	purchaseService PurchaseService,
	claimService ClaimService,
	dropService DropService,
	landService LandService,
	gridService GridService,
) *GridHandler {
	return &GridHandler{
		logs:             logger,
		requestValidator: requestValidator,
		purchases:        purchaseService,
		claims:           claimService,
		drops:            dropService,
		lands:            landService,
		grid:             gridService,
	}
}

func (h *GridHandler) HandleSubmitPurchase(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.SubmitPurchaseRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, SubmitPurchase, requestId)
		return
	}

	if pl.CheckOnly {
		quote, err := h.purchases.Quote(r.Context(), pl.ParcelRefs())
		if err != nil {
			h.respondError(w, "Could not compute price", err, SubmitPurchase, requestId)
			return
		}
		h.respond(w, Response{Message: "Price quote", Data: quote}, http.StatusOK, requestId)
		return
	}

	result, err := h.purchases.Submit(r.Context(), pl.ToSubmitRequest())
	if err != nil {
		if errors.Is(err, store.ErrTxHashUsed) {
			// idempotent resubmission: report the existing intent
			h.respond(w, Response{
				Message: "Purchase already registered",
				Data:    result,
			}, http.StatusOK, requestId)
			return
		}
		h.respondError(w, "Could not register purchase", err, SubmitPurchase, requestId)
		return
	}

	h.respond(w, Response{Message: "Purchase registered", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.ConfirmPurchaseRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, ConfirmPurchase, requestId)
		return
	}

	result, err := h.purchases.Confirm(r.Context(), pl.TxHash)
	if err != nil {
		if errors.Is(err, core.ErrRefundPending) {
			h.respond(w, Response{
				Message: "Purchase could not be completed, funds marked for refund",
				Data:    result,
				Error:   err.Error(),
			}, http.StatusPaymentRequired, requestId)
			h.logs.Infow("purchase settled to refund_pending",
				"txHash", pl.TxHash,
				"handler", ConfirmPurchase,
				"request_id", requestId)
			return
		}
		h.respondError(w, "Could not confirm purchase", err, ConfirmPurchase, requestId)
		return
	}

	h.respond(w, Response{Message: "Purchase state", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleClaimItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.ClaimItemRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, ClaimItem, requestId)
		return
	}

	result, err := h.claims.Claim(r.Context(), pl.ToClaimRequest())
	if err != nil {
		h.respondError(w, "Could not claim item", err, ClaimItem, requestId)
		return
	}

	h.respond(w, Response{Message: "Item claimed", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleClaimedSecret(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.ClaimedSecretRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, ClaimedSecret, requestId)
		return
	}

	result, err := h.claims.ClaimedSecret(r.Context(), pl.ToSecretRequest())
	if err != nil {
		h.respondError(w, "Could not retrieve wallet key", err, ClaimedSecret, requestId)
		return
	}

	h.respond(w, Response{Message: "Wallet key", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleCreateDrop(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.CreateDropRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, CreateDrop, requestId)
		return
	}

	result, err := h.drops.CreateDrop(r.Context(), pl.ToCreateRequest())
	if err != nil {
		h.respondError(w, "Could not create drop", err, CreateDrop, requestId)
		return
	}

	h.respond(w, Response{Message: "Drop wallet created", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleConfirmDrop(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.ConfirmDropRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, ConfirmDrop, requestId)
		return
	}

	result, err := h.drops.ConfirmDrop(r.Context(), pl.ToConfirmRequest())
	if err != nil {
		h.respondError(w, "Could not confirm drop", err, ConfirmDrop, requestId)
		return
	}

	h.respond(w, Response{Message: "Drop confirmed", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleUpdateParcels(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.UpdateParcelsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &pl); err != nil {
		h.respondInvalidPayload(w, err, UpdateParcels, requestId)
		return
	}

	result, err := h.lands.UpdateParcels(r.Context(), pl.ToUpdateRequest())
	if err != nil {
		h.respondError(w, "Could not update parcels", err, UpdateParcels, requestId)
		return
	}

	h.respond(w, Response{Message: "Parcels updated", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleGetViewport(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	x, errX := queryInt(r, "x", 0)
	y, errY := queryInt(r, "y", 0)
	w2, errW := queryInt(r, "w", 1920)
	h2, errH := queryInt(r, "h", 1920)
	if err := errors.Join(errX, errY, errW, errH); err != nil {
		h.respond(w, Response{
			Message: "Could not read viewport",
			Error:   "query parameters x, y, w, h must be integers",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid viewport query", "error", err, "handler", GetViewport, "request_id", requestId)
		return
	}

	result, err := h.grid.Viewport(r.Context(), x, y, w2, h2)
	if err != nil {
		h.respondError(w, "Could not read viewport", err, GetViewport, requestId)
		return
	}

	h.respond(w, Response{Message: "Viewport", Data: result}, http.StatusOK, requestId)
}

func (h *GridHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.grid.Stats(r.Context())
	if err != nil {
		h.respondError(w, "Could not read stats", err, GetStats, requestId)
		return
	}

	h.respond(w, Response{Message: "Grid stats", Data: stats}, http.StatusOK, requestId)
}

func (h *GridHandler) respondInvalidPayload(w http.ResponseWriter, err error, handlerName, requestId string) {
	h.respond(w, Response{
		Message: "Invalid request payload",
		Error:   err.Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *GridHandler) respondError(w http.ResponseWriter, message string, err error, handlerName, requestId string) {
	code := statusForError(err)
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, signature.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrIntentNotFound),
		errors.Is(err, store.ErrParcelNotFound),
		errors.Is(err, store.ErrDropNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrItemUnavailable),
		errors.Is(err, store.ErrTxHashUsed),
		errors.Is(err, core.ErrNotConfirmedYet):
		return http.StatusConflict
	case errors.Is(err, core.ErrNoPaymentFound),
		errors.Is(err, core.ErrInsufficientPayment):
		return http.StatusPaymentRequired
	case errors.Is(err, core.ErrRequestExpired),
		errors.Is(err, core.ErrTooFar),
		errors.Is(err, core.ErrTxFailed),
		errors.Is(err, core.ErrNoTokensReceived),
		errors.Is(err, core.ErrTokenNotAllowed),
		errors.Is(err, core.ErrNothingUpdated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *GridHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
