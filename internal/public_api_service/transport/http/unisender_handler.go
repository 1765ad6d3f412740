package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware" // For GetReqID
	"github.com/go-playground/validator/v10"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// domainFailureMessage is used when Unisender reports failure without an
// error or message field.
const domainFailureMessage = "Unisender rejected the request"

// UnisenderGateway is the part of the gateway client the HTTP API uses.
type UnisenderGateway interface {
	SendSms(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	SendEmail(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	GetLists(ctx context.Context) (domain.RemoteResult, error)
	CreateList(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	Subscribe(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	GetContact(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	GetCampaigns(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	GetFields(ctx context.Context) (domain.RemoteResult, error)
}

// SenderDefaults are used when a request leaves the sender empty.
type SenderDefaults struct {
	SMSSender   string
	EmailSender string
}

type UnisenderHandler struct {
	gateway  UnisenderGateway
	defaults SenderDefaults
	logger   *slog.Logger
	validate *validator.Validate
}

func NewUnisenderHandler(gateway UnisenderGateway, defaults SenderDefaults, logger *slog.Logger, validate *validator.Validate) *UnisenderHandler {
	return &UnisenderHandler{
		gateway:  gateway,
		defaults: defaults,
		logger:   logger.With("handler", "unisender"),
		validate: validate,
	}
}

// RegisterRoutes registers the Unisender routes on r. The caller mounts them
// under /unisender.
func (h *UnisenderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/sms", h.SendSms)
	r.Post("/email", h.SendEmail)

	r.Get("/lists", h.GetLists)
	r.Post("/lists", h.CreateList)

	r.Post("/subscribe", h.Subscribe)
	r.Get("/contact", h.GetContact)

	r.Get("/campaigns", h.GetCampaigns)
	r.Get("/fields", h.GetFields)
}

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Default().Error("Failed to write JSON response", "error", err)
		}
	}
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, APIResponse{Success: false, Message: message})
}

func respondWithValidationError(w http.ResponseWriter, err error) {
	respondWithJSON(w, http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  validationErrors(err),
	})
}

// resultResponse tells respondWithResult how to phrase the outcome of one call.
type resultResponse struct {
	successMessage string // omitted when empty
	failureAction  string // completes "Failed to ..." for transport errors
	resultOnly     bool   // answer with data = result instead of the whole mapping
}

// respondWithResult maps a gateway outcome onto the HTTP envelope:
// success 200, rejected by Unisender 400, no usable response 502, transport error 500.
func (h *UnisenderHandler) respondWithResult(w http.ResponseWriter, r *http.Request, result domain.RemoteResult, err error, rr resultResponse) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	if err != nil {
		logger.ErrorContext(ctx, "Unisender call raised an error", "action", rr.failureAction, "error", err)
		respondWithJSON(w, http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Failed to " + rr.failureAction,
			Error:   err.Error(),
		})
		return
	}

	switch domain.Classify(result) {
	case domain.OutcomeSuccess:
		data := any(result.Mapping())
		if rr.resultOnly {
			data = result.Result()
			if data == nil {
				data = []any{}
			}
		}
		respondWithJSON(w, http.StatusOK, APIResponse{Success: true, Message: rr.successMessage, Data: data})
	case domain.OutcomeDomainFailure:
		msg, ok := domain.GetErrorMessage(result.Mapping())
		if !ok || msg == "" {
			msg = domainFailureMessage
		}
		logger.InfoContext(ctx, "Unisender rejected request", "action", rr.failureAction, "error", msg)
		respondWithJSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: msg, Data: result.Mapping()})
	default:
		msg, _ := result.Error()
		logger.WarnContext(ctx, "Unisender gave no usable response", "action", rr.failureAction, "error", msg)
		respondWithJSON(w, http.StatusBadGateway, APIResponse{Success: false, Message: msg, Data: result.Mapping()})
	}
}

// decodeAndValidate reads a JSON body into dst and validates it. It writes
// the error response itself and reports whether the handler may continue.
func (h *UnisenderHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	if err := h.validate.StructCtx(r.Context(), dst); err != nil {
		respondWithValidationError(w, err)
		return false
	}
	return true
}

func (h *UnisenderHandler) SendSms(w http.ResponseWriter, r *http.Request) {
	var req SendSmsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	sender := req.Sender
	if sender == "" {
		sender = h.defaults.SMSSender
	}
	params := domain.OperationParams{
		"phone":  req.Phone,
		"text":   req.Text,
		"sender": sender,
	}

	result, err := h.gateway.SendSms(r.Context(), params)
	h.respondWithResult(w, r, result, err, resultResponse{successMessage: "SMS sent successfully", failureAction: "send SMS"})
}

func (h *UnisenderHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req SendEmailRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	sender := req.Sender
	if sender == "" {
		sender = h.defaults.EmailSender
	}
	params := domain.OperationParams{
		"email":   req.Email,
		"subject": req.Subject,
		"sender":  sender,
	}
	if req.Body != "" {
		params["body"] = req.Body
	}
	if req.HTMLBody != "" {
		params["body_html"] = req.HTMLBody
	}
	if req.SenderName != "" {
		params["sender_name"] = req.SenderName
	}

	result, err := h.gateway.SendEmail(r.Context(), params)
	h.respondWithResult(w, r, result, err, resultResponse{successMessage: "Email sent successfully", failureAction: "send email"})
}

func (h *UnisenderHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	result, err := h.gateway.GetLists(r.Context())
	h.respondWithResult(w, r, result, err, resultResponse{failureAction: "get lists", resultOnly: true})
}

func (h *UnisenderHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	params := domain.OperationParams{"title": req.Title}
	if req.Description != "" {
		params["description"] = req.Description
	}

	result, err := h.gateway.CreateList(r.Context(), params)
	h.respondWithResult(w, r, result, err, resultResponse{successMessage: "List created successfully", failureAction: "create list"})
}

func (h *UnisenderHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	params := domain.OperationParams{
		"email":    req.Email,
		"list_ids": req.ListIDs,
	}
	if req.Tags != "" {
		params["tags"] = req.Tags
	}
	if req.RequestIP != "" {
		params["request_ip"] = req.RequestIP
	}

	result, err := h.gateway.Subscribe(r.Context(), params)
	h.respondWithResult(w, r, result, err, resultResponse{successMessage: "Contact subscribed successfully", failureAction: "subscribe contact"})
}

func (h *UnisenderHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	query := GetContactQuery{Email: r.URL.Query().Get("email")}
	if err := h.validate.StructCtx(r.Context(), query); err != nil {
		respondWithValidationError(w, err)
		return
	}

	result, err := h.gateway.GetContact(r.Context(), domain.OperationParams{"email": query.Email})
	h.respondWithResult(w, r, result, err, resultResponse{failureAction: "get contact", resultOnly: true})
}

func (h *UnisenderHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := domain.OperationParams{}
	for _, key := range []string{"limit", "offset", "from", "to"} {
		if query.Has(key) {
			params[key] = query.Get(key)
		}
	}

	result, err := h.gateway.GetCampaigns(r.Context(), params)
	h.respondWithResult(w, r, result, err, resultResponse{failureAction: "get campaigns", resultOnly: true})
}

func (h *UnisenderHandler) GetFields(w http.ResponseWriter, r *http.Request) {
	result, err := h.gateway.GetFields(r.Context())
	h.respondWithResult(w, r, result, err, resultResponse{failureAction: "get fields", resultOnly: true})
}
