package dto

// ReceiptUpload is returned after a receipt image has been stored; the
// client references the URL (and path) when it writes the transaction.
type ReceiptUpload struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
