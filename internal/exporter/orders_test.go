package exporter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhorStoiko/Projekt/internal/dataprocessing"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

func cleanOrders() []domain.Order {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
		return d
	}
	return []domain.Order{
		{OrderID: "1", OrderDate: day("2024-01-05"), HasDate: true, Amount: 100.5, CustomerID: "C1", ProductCategory: "Books", Status: domain.OrderStatusCompleted},
		{OrderID: "2", OrderDate: day("2024-01-20"), HasDate: true, Amount: 200, CustomerID: "C2", ProductCategory: "Toys", Status: domain.OrderStatusPending},
		{OrderID: "4", Amount: 75.25, CustomerID: "C3", ProductCategory: "Garden", Status: domain.OrderStatusShipped},
		{OrderID: "5", OrderDate: day("2024-02-01"), HasDate: true, Amount: 20, ProductCategory: "Toys", Status: domain.OrderStatusCancelled},
	}
}

func TestWriteOrders(t *testing.T) {
	w, paths := setupTestEnv(t)

	require.NoError(t, w.WriteOrders(paths.CleanData, cleanOrders()))

	assert.Equal(t, [][]string{
		CleanOrderHeaders,
		{"1", "2024-01-05", "100.50", "C1", "Books", "completed"},
		{"2", "2024-01-20", "200.00", "C2", "Toys", "pending"},
		{"4", "", "75.25", "C3", "Garden", "shipped"},
		{"5", "2024-02-01", "20.00", "", "Toys", "cancelled"},
	}, readCSV(t, paths.CleanData))
}

func TestWriteOrdersEmpty(t *testing.T) {
	w, paths := setupTestEnv(t)

	require.NoError(t, w.WriteOrders(paths.CleanData, nil))
	assert.Equal(t, [][]string{CleanOrderHeaders}, readCSV(t, paths.CleanData))
}

func TestWriteOrdersReloads(t *testing.T) {
	w, paths := setupTestEnv(t)
	want := cleanOrders()
	require.NoError(t, w.WriteOrders(paths.CleanData, want))

	table, err := dataprocessing.LoadCSV(paths.CleanData)
	require.NoError(t, err)

	got, stats, err := dataprocessing.NewCleaner(nil).Clean(context.Background(), table)
	require.NoError(t, err)
	assert.Zero(t, stats.Invalid)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].OrderID, got[i].OrderID)
		assert.Equal(t, want[i].CustomerID, got[i].CustomerID)
		assert.Equal(t, want[i].Amount, got[i].Amount)
		assert.Equal(t, want[i].HasDate, got[i].HasDate)
		assert.Equal(t, want[i].Status, got[i].Status)
		if want[i].HasDate {
			assert.True(t, want[i].OrderDate.Equal(got[i].OrderDate))
		}
	}
}
