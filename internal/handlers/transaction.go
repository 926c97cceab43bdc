package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/middleware"
	"github.com/lucasmbarros/wallet-backend/internal/models"
	"github.com/lucasmbarros/wallet-backend/internal/response"
)

const dateLayout = "2006-01-02"

const maxPageSize = 100

type transactionService interface {
	Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, uid string, filter dto.TransactionFilter) (dto.TransactionPage, error)
	Summary(ctx context.Context, uid string) (dto.Summary, error)
	Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.CreateTransaction)
	r.Get("/summary", h.GetSummary) // must be before /{transactionId}
	r.Get("/{transactionId}", h.GetTransaction)
	r.Put("/{transactionId}", h.UpdateTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	filter, err := parseFilter(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	page, err := h.TransactionSvc.List(r.Context(), uid, filter)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, page)
}

func (h *transactionHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.TransactionSvc.Summary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Get(r.Context(), uid, transactionID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.TransactionSvc.Update(r.Context(), uid, transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.TransactionSvc.Delete(r.Context(), uid, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// parseFilter reads the list query parameters. Dates are calendar days
// (YYYY-MM-DD); the service widens them to day boundaries.
func parseFilter(r *http.Request) (dto.TransactionFilter, error) {
	q := r.URL.Query()
	filter := dto.TransactionFilter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
	}

	switch filter.Type {
	case "", dto.TypeFilterAll, dto.TypeFilterIncome, dto.TypeFilterExpense:
	default:
		return filter, errs.NewValidationError("type must be all, income or expense")
	}

	if v := q.Get("from"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return filter, errs.NewValidationError("from must be formatted YYYY-MM-DD")
		}
		filter.DateFrom = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return filter, errs.NewValidationError("to must be formatted YYYY-MM-DD")
		}
		filter.DateTo = &t
	}

	var err error
	filter.Page, err = parsePositiveInt(q.Get("page"), 1)
	if err != nil {
		return filter, errs.NewValidationError("page must be a positive integer")
	}
	filter.PageSize, err = parsePositiveInt(q.Get("pageSize"), 0)
	if err != nil || filter.PageSize > maxPageSize {
		return filter, errs.NewValidationError("pageSize must be a positive integer up to 100")
	}

	return filter, nil
}

func parsePositiveInt(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errs.NewValidationError("not a positive integer")
	}
	return n, nil
}
