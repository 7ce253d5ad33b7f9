package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/pushfan/pkg/logger"
	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/userstore"
	"github.com/dmitrymomot/pushfan/pkg/validator"
	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

const (
	maxDocumentSize = 64 << 10
	maxPayloadSize  = 64 << 10
)

type handlers struct {
	registry    Registry
	store       userstore.Store
	dispatcher  Dispatcher
	credentials vapid.Source
	logger      *slog.Logger
}

type registerResponse struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
}

type countResponse struct {
	Count    int `json:"count"`
	Capacity int `json:"capacity"`
}

type triggerResponse struct {
	DispatchID string `json:"dispatch_id"`
	Attempted  int    `json:"attempted"`
}

// register adds the document's subscription to the registry, then persists
// the document. A store failure after a successful add leaves the
// subscription registered.
func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var doc userstore.User
	if err := decodeJSON(w, r, maxDocumentSize, &doc); err != nil {
		respondDecodeError(w, err)
		return
	}

	if doc.Subscription == nil {
		respondError(w, http.StatusUnprocessableEntity, CodeInvalidSubscription, subscription.ErrInvalidSubscription.Error(),
			map[string][]string{"subscription": {validator.ErrFieldRequired.Error()}})
		return
	}

	if err := h.registry.Add(*doc.Subscription); err != nil {
		switch {
		case errors.Is(err, subscription.ErrCapacityExceeded):
			h.logger.WarnContext(ctx, "registration rejected", logger.Error(err))
			respondError(w, http.StatusConflict, CodeCapacityExceeded, err.Error(), nil)
		case errors.Is(err, subscription.ErrInvalidSubscription):
			respondError(w, http.StatusUnprocessableEntity, CodeInvalidSubscription,
				subscription.ErrInvalidSubscription.Error(), prefixed("subscription.", validator.ExtractValidationErrors(err)))
		default:
			h.logger.ErrorContext(ctx, "registration failed", logger.Error(err))
			respondError(w, http.StatusInternalServerError, CodeInternal, "registration failed", nil)
		}
		return
	}

	saved, err := h.store.Save(ctx, doc)
	if err != nil {
		h.logger.ErrorContext(ctx, "user document not saved",
			logger.Endpoint(doc.Subscription.Endpoint), logger.Error(err))
		respondError(w, http.StatusInternalServerError, CodeStoreFailed, "subscription registered but user document not saved", nil)
		return
	}

	h.logger.InfoContext(ctx, "subscription registered",
		logger.Endpoint(doc.Subscription.Endpoint),
		logger.Count("registered", h.registry.Len()),
	)
	respond(w, http.StatusCreated, registerResponse{ID: saved.ID, Endpoint: doc.Subscription.Endpoint})
}

func (h *handlers) count(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, countResponse{Count: h.registry.Len(), Capacity: h.registry.Capacity()})
}

// trigger dispatches the raw request body. The dispatch outlives a client
// disconnect; each delivery is still bounded by the engine's timeout.
func (h *handlers) trigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, ErrBodyTooLarge.Error(), nil)
			return
		}
		respondError(w, http.StatusBadRequest, CodeEmptyPayload, "failed to read payload", nil)
		return
	}
	if len(payload) == 0 {
		respondError(w, http.StatusBadRequest, CodeEmptyPayload, "payload is required", nil)
		return
	}

	creds, err := h.credentials.Credentials(ctx)
	if err != nil {
		h.respondDispatchError(w, r, err)
		return
	}

	report, err := h.dispatcher.Dispatch(context.WithoutCancel(ctx), payload, creds)
	if err != nil {
		h.respondDispatchError(w, r, err)
		return
	}

	respond(w, http.StatusAccepted, triggerResponse{DispatchID: report.ID.String(), Attempted: report.Attempted})
}

func (h *handlers) respondDispatchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, vapid.ErrMissingCredentials) {
		h.logger.ErrorContext(r.Context(), "dispatch not possible", logger.Error(err))
		respondError(w, http.StatusServiceUnavailable, CodeVAPIDNotConfigured, err.Error(), nil)
		return
	}
	h.logger.ErrorContext(r.Context(), "dispatch failed", logger.Error(err))
	respondError(w, http.StatusInternalServerError, CodeInternal, "dispatch failed", nil)
}

func prefixed(prefix string, verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for field, msgs := range verrs.Map() {
		out[prefix+field] = msgs
	}
	return out
}
