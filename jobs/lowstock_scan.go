package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/toriyu-water/toriyu-pos/internal/catalog"
)

// mailEnqueuer is the slice of the jobs client the scan needs.
type mailEnqueuer interface {
	EnqueueSendEmail(ctx context.Context, payload SendEmailPayload) (*asynq.TaskInfo, error)
}

// lowStockLister lists products at or below their restock threshold.
type lowStockLister interface {
	LowStockProducts(ctx context.Context) ([]catalog.Product, error)
}

// LowStockScanJob walks the catalog and enqueues a restock alert per
// low-stock product. Amounts are formatted for the Indonesian locale.
type LowStockScanJob struct {
	Catalog   lowStockLister
	Mail      mailEnqueuer
	Logger    *slog.Logger
	Recipient string
}

// NewLowStockScanJob wires dependencies for the scan handler.
func NewLowStockScanJob(cat lowStockLister, mail mailEnqueuer, logger *slog.Logger, recipient string) *LowStockScanJob {
	return &LowStockScanJob{Catalog: cat, Mail: mail, Logger: logger, Recipient: recipient}
}

// Handle processes low-stock scan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Catalog == nil {
		return errors.New("lowstock scan: handler not configured")
	}
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger()
	logger.Info("starting low stock scan")

	products, err := j.Catalog.LowStockProducts(ctx)
	if err != nil {
		logger.Error("list low stock products", slog.Any("error", err))
		return err
	}
	if len(products) == 0 {
		logger.Info("no low stock products found")
		return nil
	}

	printer := message.NewPrinter(language.Indonesian)
	alerted := 0
	for _, p := range products {
		body := printer.Sprintf(
			"Stok %s %s tersisa %v botol (minimum %v). Harga beli per botol Rp %v.",
			p.Name, p.Size,
			number.Decimal(p.CurrentStockUnits),
			number.Decimal(p.MinimumStockUnits),
			number.Decimal(p.PurchasePricePerUnit),
		)
		mail := SendEmailPayload{
			To:      j.Recipient,
			Subject: fmt.Sprintf("Stok menipis: %s %s", p.Name, p.Size),
			Body:    body,
		}
		if j.Mail != nil {
			if _, err := j.Mail.EnqueueSendEmail(ctx, mail); err != nil {
				logger.Error("enqueue restock alert", slog.String("product_id", p.ID), slog.Any("error", err))
				return err
			}
		}
		alerted++
	}

	logger.Info("completed low stock scan",
		slog.Int("alerts", alerted),
		slog.Time("scheduled_for", payload.ScheduledFor),
	)
	return nil
}

func (j *LowStockScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskTypeLowStockScan))
	}
	return slog.Default().With(slog.String("job", TaskTypeLowStockScan))
}
