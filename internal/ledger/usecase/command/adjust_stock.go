package command

import (
	"context"
	"fmt"
	"sync"
	"time"

	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/ledger/domain"
	"github.com/yangliu6605/react-ems/kafka"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// AdjustStockCommand represents one stock movement
type AdjustStockCommand struct {
	InstrumentID   string
	Quantity       int
	Direction      string
	Reason         string
	RelatedOrderID string
}

// AdjustStockHandler is the single mutation point for ledger-driven
// stock changes. It owns the process-wide transaction counter, seeded
// from the existing ledger size at startup. Failed adjustments never
// consume a counter value, so transaction ids are strictly increasing
// and never reused.
type AdjustStockHandler struct {
	instruments  instrumentdomain.InstrumentRepository
	transactions domain.TransactionRepository
	publisher    *kafka.Publisher

	mu      sync.Mutex
	counter int64
}

// NewAdjustStockHandler creates the adjust stock handler and seeds the
// transaction counter
func NewAdjustStockHandler(
	instruments instrumentdomain.InstrumentRepository,
	transactions domain.TransactionRepository,
	publisher *kafka.Publisher,
) *AdjustStockHandler {
	count, err := transactions.Count()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to seed transaction counter, starting at 0")
		count = 0
	}
	return &AdjustStockHandler{
		instruments:  instruments,
		transactions: transactions,
		publisher:    publisher,
		counter:      count,
	}
}

// Handle executes a single stock movement
func (h *AdjustStockHandler) Handle(cmd AdjustStockCommand) (*domain.StockTransaction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.validateLocked(cmd); err != nil {
		return nil, err
	}
	return h.applyLocked(cmd)
}

// HandleAll executes a batch of movements all-or-nothing: every command
// is validated against the stock levels the batch itself produces
// before anything is applied, so a failing item leaves no partial
// ledger effects behind.
func (h *AdjustStockHandler) HandleAll(cmds []AdjustStockCommand) ([]domain.StockTransaction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// First pass: validate against projected stock levels.
	projected := make(map[string]int)
	for _, cmd := range cmds {
		if err := h.validateBasic(cmd); err != nil {
			return nil, err
		}

		stock, ok := projected[cmd.InstrumentID]
		if !ok {
			instrument, err := h.instruments.FindByID(cmd.InstrumentID)
			if err != nil {
				return nil, instrumentdomain.ErrNotFound
			}
			stock = instrument.Stock
		}

		if cmd.Direction == domain.DirectionOut {
			if stock < cmd.Quantity {
				return nil, &domain.InsufficientStockError{
					InstrumentID: cmd.InstrumentID,
					Available:    stock,
					Requested:    cmd.Quantity,
				}
			}
			stock -= cmd.Quantity
		} else {
			stock += cmd.Quantity
		}
		projected[cmd.InstrumentID] = stock
	}

	// Second pass: apply.
	applied := make([]domain.StockTransaction, 0, len(cmds))
	for _, cmd := range cmds {
		tx, err := h.applyLocked(cmd)
		if err != nil {
			return nil, err
		}
		applied = append(applied, *tx)
	}
	return applied, nil
}

func (h *AdjustStockHandler) validateBasic(cmd AdjustStockCommand) error {
	if cmd.InstrumentID == "" {
		return fmt.Errorf("instrument id is required")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	if cmd.Direction != domain.DirectionIn && cmd.Direction != domain.DirectionOut {
		return fmt.Errorf("invalid direction: %s", cmd.Direction)
	}
	return nil
}

func (h *AdjustStockHandler) validateLocked(cmd AdjustStockCommand) error {
	if err := h.validateBasic(cmd); err != nil {
		return err
	}

	instrument, err := h.instruments.FindByID(cmd.InstrumentID)
	if err != nil {
		return instrumentdomain.ErrNotFound
	}

	if cmd.Direction == domain.DirectionOut && instrument.Stock < cmd.Quantity {
		return &domain.InsufficientStockError{
			InstrumentID: cmd.InstrumentID,
			Available:    instrument.Stock,
			Requested:    cmd.Quantity,
		}
	}
	return nil
}

// applyLocked mutates stock and appends the ledger entry. Callers hold
// the mutex and have already validated the command.
func (h *AdjustStockHandler) applyLocked(cmd AdjustStockCommand) (*domain.StockTransaction, error) {
	instrument, err := h.instruments.FindByID(cmd.InstrumentID)
	if err != nil {
		return nil, instrumentdomain.ErrNotFound
	}

	newStock := instrument.Stock
	if cmd.Direction == domain.DirectionOut {
		newStock -= cmd.Quantity
	} else {
		newStock += cmd.Quantity
	}

	if err := h.instruments.UpdateStock(cmd.InstrumentID, newStock); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	h.counter++
	tx := &domain.StockTransaction{
		ID:             fmt.Sprintf("TXN-%03d", h.counter),
		InstrumentID:   instrument.ID,
		InstrumentName: instrument.Name,
		Type:           cmd.Direction,
		Quantity:       cmd.Quantity,
		Date:           time.Now().Format("2006-01-02"),
		Operator:       domain.OperatorSystem,
		Reason:         cmd.Reason,
		RelatedOrderID: cmd.RelatedOrderID,
		CreatedAt:      time.Now(),
	}

	if err := h.transactions.Append(tx); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	// Event publishing is best-effort; never fail the movement on it.
	if err := h.publisher.PublishStockMoved(context.Background(), kafka.StockMovedEvent{
		TransactionID:  tx.ID,
		InstrumentID:   tx.InstrumentID,
		Direction:      tx.Type,
		Quantity:       tx.Quantity,
		Reason:         tx.Reason,
		RelatedOrderID: tx.RelatedOrderID,
	}); err != nil {
		logger.Logger.Warn().Err(err).Str("transaction_id", tx.ID).Msg("Failed to publish stock moved event")
	}

	logger.Logger.Info().
		Str("transaction_id", tx.ID).
		Str("instrument_id", tx.InstrumentID).
		Str("direction", tx.Type).
		Int("quantity", tx.Quantity).
		Int("stock", newStock).
		Msg("Stock adjusted")

	return tx, nil
}
