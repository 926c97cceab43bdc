package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/models"
)

// DefaultPageSize is the fixed window the list screen shows per page.
const DefaultPageSize = 6

// Summarize reduces the full transaction set in one pass. Sums are carried
// as decimals so currency rounding is exact at 2 places.
func Summarize(txs []models.Transaction) dto.Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range txs {
		amount := decimal.NewFromFloat(t.Amount)
		if t.Type == models.TypeIncome {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}

	balance := income.Sub(expense)

	// Guard the ratio: zero income means ratio 0, never a division by zero.
	ratio := int64(0)
	if !income.IsZero() {
		ratio = expense.Div(income).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	status := dto.StatusNeutral
	switch balance.Sign() {
	case 1:
		status = dto.StatusHealthy
	case -1:
		status = dto.StatusAttention
	}

	return dto.Summary{
		Balance:              balance.Round(2).InexactFloat64(),
		TotalIncome:          income.Round(2).InexactFloat64(),
		TotalExpense:         expense.Round(2).InexactFloat64(),
		SpendingRatioPercent: int(ratio),
		Status:               status,
	}
}

// FilterTransactions keeps the transactions satisfying every predicate of
// the filter: case-insensitive description substring, type, and inclusive
// creation-date range. The zero filter matches everything.
func FilterTransactions(txs []models.Transaction, f dto.TransactionFilter) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if !matchesType(t.Type, f.Type) {
			continue
		}
		if f.DateFrom != nil && t.CreatedAt.Before(startOfDay(*f.DateFrom)) {
			continue
		}
		if f.DateTo != nil && t.CreatedAt.After(endOfDay(*f.DateTo)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// PaginateTransactions sorts the whole filtered set newest first, then
// slices the requested 1-indexed window. Sorting the full set before
// slicing keeps ordering consistent across page boundaries.
func PaginateTransactions(txs []models.Transaction, page, pageSize int) dto.TransactionPage {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	start := (page - 1) * pageSize
	end := start + pageSize

	window := []models.Transaction{}
	if start < len(sorted) {
		if end > len(sorted) {
			end = len(sorted)
		}
		window = sorted[start:end]
	}

	return dto.TransactionPage{
		Transactions: window,
		Page:         page,
		PageSize:     pageSize,
		TotalCount:   len(sorted),
		HasPrev:      page > 1,
		HasNext:      start+pageSize < len(sorted),
	}
}

func matchesType(txType, filter string) bool {
	switch filter {
	case "", dto.TypeFilterAll:
		return true
	default:
		return txType == filter
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 of t's calendar day, making the range
// end-inclusive for transactions created any time that day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}
