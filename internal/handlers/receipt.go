package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/middleware"
	"github.com/lucasmbarros/wallet-backend/internal/response"
)

// maxReceiptBytes caps a receipt upload at 10 MiB.
const maxReceiptBytes = 10 << 20

type receiptService interface {
	Upload(ctx context.Context, uid string, data []byte, contentType string) (dto.ReceiptUpload, error)
}

type receiptHandlers struct {
	ResponseHandler response.ResponseHandler
	ReceiptSvc      receiptService
}

func NewReceiptHandlers(deps *Deps) *receiptHandlers {
	return &receiptHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReceiptSvc:      deps.ReceiptSvc,
	}
}

func (h *receiptHandlers) ReceiptRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.UploadReceipt)
	return r
}

// UploadReceipt stores the multipart "file" part and returns its URL. The
// client uploads first and only then writes the transaction referencing
// the returned URL.
func (h *receiptHandlers) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("multipart field 'file' is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("could not read uploaded file"))
		return
	}

	uid := middleware.UID(r.Context())
	upload, err := h.ReceiptSvc.Upload(r.Context(), uid, data, header.Header.Get("Content-Type"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, upload)
}
