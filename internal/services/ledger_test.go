package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/models"
)

func tx(desc string, amount float64, txType string, createdAt time.Time) models.Transaction {
	return models.Transaction{
		Description: desc,
		Amount:      amount,
		Type:        txType,
		CreatedAt:   createdAt,
	}
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		tx("salary", 100, models.TypeIncome, day(1)),
		tx("groceries", 30, models.TypeExpense, day(2)),
		tx("bus", 20, models.TypeExpense, day(3)),
	}

	got := Summarize(txs)

	assert.Equal(t, 50.0, got.Balance)
	assert.Equal(t, 100.0, got.TotalIncome)
	assert.Equal(t, 50.0, got.TotalExpense)
	assert.Equal(t, 50, got.SpendingRatioPercent)
	assert.Equal(t, dto.StatusHealthy, got.Status)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)

	assert.Equal(t, 0.0, got.Balance)
	assert.Equal(t, 0.0, got.TotalIncome)
	assert.Equal(t, 0.0, got.TotalExpense)
	assert.Equal(t, 0, got.SpendingRatioPercent)
	assert.Equal(t, dto.StatusNeutral, got.Status)
}

func TestSummarizeZeroIncomeRatioGuard(t *testing.T) {
	txs := []models.Transaction{
		tx("rent", 900, models.TypeExpense, day(1)),
	}

	got := Summarize(txs)

	assert.Equal(t, 0, got.SpendingRatioPercent, "zero income must never divide")
	assert.Equal(t, -900.0, got.Balance)
	assert.Equal(t, dto.StatusAttention, got.Status)
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	txs := []models.Transaction{
		tx("a", 10.10, models.TypeIncome, day(1)),
		tx("b", 0.20, models.TypeIncome, day(2)),
		tx("c", 0.30, models.TypeExpense, day(3)),
		tx("d", 3.33, models.TypeExpense, day(4)),
	}

	got := Summarize(txs)

	assert.InDelta(t, got.TotalIncome-got.TotalExpense, got.Balance, 1e-9)
	assert.Equal(t, 10.30, got.TotalIncome)
	assert.Equal(t, 3.63, got.TotalExpense)
}

func TestSummarizeRatioRoundsToNearestInt(t *testing.T) {
	txs := []models.Transaction{
		tx("in", 3, models.TypeIncome, day(1)),
		tx("out", 1, models.TypeExpense, day(2)),
	}

	// 1/3 of income spent: 33.33..% rounds to 33.
	assert.Equal(t, 33, Summarize(txs).SpendingRatioPercent)

	txs = append(txs, tx("out2", 1, models.TypeExpense, day(3)))
	// 2/3: 66.66..% rounds to 67.
	assert.Equal(t, 67, Summarize(txs).SpendingRatioPercent)
}

func TestSummarizeZeroBalanceIsNeutral(t *testing.T) {
	txs := []models.Transaction{
		tx("in", 25, models.TypeIncome, day(1)),
		tx("out", 25, models.TypeExpense, day(2)),
	}

	got := Summarize(txs)

	assert.Equal(t, 0.0, got.Balance)
	assert.Equal(t, dto.StatusNeutral, got.Status)
	assert.Equal(t, 100, got.SpendingRatioPercent)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	txs := []models.Transaction{
		tx("Uber to airport", 40, models.TypeExpense, day(1)),
		tx("UBER EATS", 25, models.TypeExpense, day(2)),
		tx("Groceries", 60, models.TypeExpense, day(3)),
	}

	got := FilterTransactions(txs, dto.TransactionFilter{Search: "uber"})

	require.Len(t, got, 2)
	for _, g := range got {
		assert.Contains(t, []string{"Uber to airport", "UBER EATS"}, g.Description)
	}
}

func TestFilterByType(t *testing.T) {
	txs := []models.Transaction{
		tx("salary", 100, models.TypeIncome, day(1)),
		tx("rent", 80, models.TypeExpense, day(2)),
	}

	income := FilterTransactions(txs, dto.TransactionFilter{Type: dto.TypeFilterIncome})
	require.Len(t, income, 1)
	assert.Equal(t, "salary", income[0].Description)

	expense := FilterTransactions(txs, dto.TransactionFilter{Type: dto.TypeFilterExpense})
	require.Len(t, expense, 1)
	assert.Equal(t, "rent", expense[0].Description)

	all := FilterTransactions(txs, dto.TransactionFilter{Type: dto.TypeFilterAll})
	assert.Len(t, all, 2)
}

func TestFilterDateRangeIsDayInclusive(t *testing.T) {
	endOfRange := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		// 23:59:59 on the end day is still inside the range.
		tx("on the day", 10, models.TypeExpense, time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)),
		tx("the day after", 10, models.TypeExpense, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)),
		tx("before start", 10, models.TypeExpense, time.Date(2025, time.March, 4, 23, 0, 0, 0, time.UTC)),
		tx("at start", 10, models.TypeExpense, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	from := time.Date(2025, time.March, 5, 15, 30, 0, 0, time.UTC) // time-of-day is ignored
	got := FilterTransactions(txs, dto.TransactionFilter{DateFrom: &from, DateTo: &endOfRange})

	require.Len(t, got, 2)
	assert.Equal(t, "on the day", got[0].Description)
	assert.Equal(t, "at start", got[1].Description)
}

func TestFilterIsConjunction(t *testing.T) {
	txs := []models.Transaction{
		tx("Uber ride", 40, models.TypeExpense, day(5)),
		tx("Uber refund", 40, models.TypeIncome, day(5)),
		tx("Uber ride old", 40, models.TypeExpense, day(1)),
		tx("Taxi", 30, models.TypeExpense, day(5)),
	}

	from := day(4)
	got := FilterTransactions(txs, dto.TransactionFilter{
		Search:   "uber",
		Type:     dto.TypeFilterExpense,
		DateFrom: &from,
	})

	// Every survivor satisfies all three predicates; every excluded row
	// fails at least one.
	require.Len(t, got, 1)
	assert.Equal(t, "Uber ride", got[0].Description)
}

func TestFilterZeroValueMatchesEverything(t *testing.T) {
	txs := []models.Transaction{
		tx("a", 1, models.TypeIncome, day(1)),
		tx("b", 2, models.TypeExpense, day(2)),
		tx("c", 3, models.TypeExpense, day(3)),
	}

	got := FilterTransactions(txs, dto.TransactionFilter{})

	assert.Equal(t, txs, got, "clearing filters must yield the unfiltered set")
}

func TestPaginateSortsNewestFirstAcrossPages(t *testing.T) {
	// Insertion order deliberately scrambled relative to creation time.
	txs := []models.Transaction{
		tx("d3", 1, models.TypeExpense, day(3)),
		tx("d9", 1, models.TypeExpense, day(9)),
		tx("d1", 1, models.TypeExpense, day(1)),
		tx("d7", 1, models.TypeExpense, day(7)),
		tx("d5", 1, models.TypeExpense, day(5)),
	}

	page1 := PaginateTransactions(txs, 1, 2)
	page2 := PaginateTransactions(txs, 2, 2)
	page3 := PaginateTransactions(txs, 3, 2)

	// The full set is sorted before slicing, so page boundaries respect
	// the global order.
	require.Len(t, page1.Transactions, 2)
	assert.Equal(t, "d9", page1.Transactions[0].Description)
	assert.Equal(t, "d7", page1.Transactions[1].Description)
	assert.Equal(t, "d5", page2.Transactions[0].Description)
	assert.Equal(t, "d3", page2.Transactions[1].Description)
	require.Len(t, page3.Transactions, 1)
	assert.Equal(t, "d1", page3.Transactions[0].Description)
}

func TestPaginateBoundaries(t *testing.T) {
	txs := make([]models.Transaction, 0, 13)
	for i := 1; i <= 13; i++ {
		txs = append(txs, tx("t", 1, models.TypeExpense, day(i)))
	}

	page1 := PaginateTransactions(txs, 1, DefaultPageSize)
	assert.Len(t, page1.Transactions, 6)
	assert.False(t, page1.HasPrev)
	assert.True(t, page1.HasNext)
	assert.Equal(t, 13, page1.TotalCount)

	page2 := PaginateTransactions(txs, 2, DefaultPageSize)
	assert.Len(t, page2.Transactions, 6)
	assert.True(t, page2.HasPrev)
	assert.True(t, page2.HasNext)

	// Last page holds N mod pageSize items and Next is disabled.
	page3 := PaginateTransactions(txs, 3, DefaultPageSize)
	assert.Len(t, page3.Transactions, 1)
	assert.True(t, page3.HasPrev)
	assert.False(t, page3.HasNext)
}

func TestPaginateExactMultiple(t *testing.T) {
	txs := make([]models.Transaction, 0, 12)
	for i := 1; i <= 12; i++ {
		txs = append(txs, tx("t", 1, models.TypeExpense, day(i)))
	}

	last := PaginateTransactions(txs, 2, DefaultPageSize)
	assert.Len(t, last.Transactions, 6, "divisible total fills the last page")
	assert.False(t, last.HasNext)
}

func TestPaginatePastTheEnd(t *testing.T) {
	txs := []models.Transaction{tx("only", 1, models.TypeExpense, day(1))}

	got := PaginateTransactions(txs, 4, DefaultPageSize)

	assert.Empty(t, got.Transactions)
	assert.Equal(t, 4, got.Page)
	assert.True(t, got.HasPrev)
	assert.False(t, got.HasNext)
}

func TestPaginateDefaults(t *testing.T) {
	txs := make([]models.Transaction, 0, 7)
	for i := 1; i <= 7; i++ {
		txs = append(txs, tx("t", 1, models.TypeExpense, day(i)))
	}

	got := PaginateTransactions(txs, 0, 0)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, DefaultPageSize, got.PageSize)
	assert.Len(t, got.Transactions, 6)
}

func TestPaginateStableOnEqualTimestamps(t *testing.T) {
	at := day(1)
	txs := []models.Transaction{
		tx("first", 1, models.TypeExpense, at),
		tx("second", 2, models.TypeExpense, at),
		tx("third", 3, models.TypeExpense, at),
	}

	got := PaginateTransactions(txs, 1, 10)

	require.Len(t, got.Transactions, 3)
	assert.Equal(t, "first", got.Transactions[0].Description)
	assert.Equal(t, "second", got.Transactions[1].Description)
	assert.Equal(t, "third", got.Transactions[2].Description)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	txs := []models.Transaction{
		tx("b", 1, models.TypeExpense, day(2)),
		tx("a", 1, models.TypeExpense, day(1)),
	}
	orig := make([]models.Transaction, len(txs))
	copy(orig, txs)

	_ = FilterTransactions(txs, dto.TransactionFilter{Search: "a"})
	_ = PaginateTransactions(txs, 1, 1)

	assert.Equal(t, orig, txs)
}
