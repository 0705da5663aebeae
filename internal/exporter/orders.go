package exporter

import (
	"log/slog"
	"strconv"

	"github.com/IhorStoiko/Projekt/internal/config"
	"github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/pkg/contracts/domain"
)

// CleanOrderHeaders is the column order of the exported clean table
var CleanOrderHeaders = []string{"order_id", "order_date", "order_amount", "customer_id", "product_category", "status"}

// OrderRecord renders one order as a clean table row. Undated orders get an
// empty date; amounts carry two decimals.
func OrderRecord(o domain.Order) []string {
	date := ""
	if o.HasDate {
		date = o.OrderDate.Format(config.DateLayoutISO)
	}
	return []string{
		o.OrderID,
		date,
		strconv.FormatFloat(o.Amount, 'f', 2, 64),
		o.CustomerID,
		o.ProductCategory,
		string(o.Status),
	}
}

// WriteOrders streams the cleaned orders into filePath, replacing it
func (w *CSVWriter) WriteOrders(filePath string, orders []domain.Order) error {
	stream, err := w.CreateStreamWriter(filePath, CleanOrderHeaders)
	if err != nil {
		return err
	}

	for i, o := range orders {
		if err := stream.WriteRecord(OrderRecord(o)); err != nil {
			_ = stream.Close()
			return errors.NewStorageError("failed to write order", err).WithContext("row", i+1)
		}
	}
	if err := stream.Close(); err != nil {
		return errors.NewStorageError("failed to flush orders", err).WithContext("path", w.resolvePath(filePath))
	}

	w.logger.Info("Clean orders written",
		slog.String("path", w.resolvePath(filePath)),
		slog.Int("order_count", len(orders)))
	return nil
}
