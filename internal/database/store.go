package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// History limits for GetRecentExchanges.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ErrNilExchange is returned when SaveExchange receives a nil exchange.
var ErrNilExchange = errors.New("cannot save nil exchange")

// Store defines the exchange log operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveExchange inserts an exchange and sets its ID and CreatedAt.
	SaveExchange(ctx context.Context, exchange *Exchange) error

	// GetRecentExchanges returns up to limit exchanges of a chat, newest first.
	GetRecentExchanges(ctx context.Context, chatID int64, limit int) ([]Exchange, error)

	// GetIntentStats returns hit counts per intent, most frequent first.
	GetIntentStats(ctx context.Context) ([]IntentStat, error)

	// DeleteAllExchanges removes every exchange and returns how many were deleted.
	DeleteAllExchanges(ctx context.Context) (int64, error)

	// DeleteExchangesBefore removes exchanges created before cutoff.
	DeleteExchangesBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance (VACUUM).
	RunSQLMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a Store backed by sqlx. A nil logger discards output.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
		now:    time.Now,
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) SaveExchange(ctx context.Context, exchange *Exchange) error {
	if exchange == nil {
		return ErrNilExchange
	}
	if exchange.ChatID == 0 {
		return fmt.Errorf("exchange must have a non-zero chat_id")
	}
	if exchange.Intent == "" {
		return fmt.Errorf("exchange must have an intent")
	}
	if exchange.Reply == "" {
		return fmt.Errorf("exchange must have a reply")
	}

	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = s.now()
	}
	exchange.CreatedAt = exchange.CreatedAt.UTC()

	query := `
        INSERT INTO exchanges (chat_id, user_id, input, intent, reply, created_at)
        VALUES (:chat_id, :user_id, :input, :intent, :reply, :created_at);
    `

	result, err := s.db.NamedExecContext(ctx, query, exchange)
	if err != nil {
		if isContextErr(err) {
			s.logger.WarnContext(ctx, "Context timeout or cancellation while saving exchange",
				"chat_id", exchange.ChatID, "error", err)
			return err
		}
		s.logger.ErrorContext(ctx, "Error saving exchange",
			"chat_id", exchange.ChatID, "user_id", exchange.UserID, "error", err)
		return fmt.Errorf("failed to save exchange (chat %d, user %d): %w", exchange.ChatID, exchange.UserID, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		exchange.ID = id
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after saving exchange",
			"chat_id", exchange.ChatID, "error", err)
	}

	s.logger.DebugContext(ctx, "Exchange saved",
		"chat_id", exchange.ChatID, "intent", exchange.Intent, "exchange_id", exchange.ID)
	return nil
}

func (s *sqlxStore) GetRecentExchanges(ctx context.Context, chatID int64, limit int) ([]Exchange, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("chat_id cannot be zero")
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	query := `
        SELECT id, chat_id, user_id, input, intent, reply, created_at
        FROM exchanges
        WHERE chat_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?;
    `

	exchanges := []Exchange{}
	err := s.db.SelectContext(ctx, &exchanges, query, chatID, limit)
	switch {
	case isContextErr(err):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching exchanges",
			"chat_id", chatID, "error", err)
		return nil, err
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting recent exchanges", "chat_id", chatID, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to get recent exchanges for chat %d: %w", chatID, err)
	}

	s.logger.DebugContext(ctx, "Fetched recent exchanges", "chat_id", chatID, "count", len(exchanges))
	return exchanges, nil
}

func (s *sqlxStore) GetIntentStats(ctx context.Context) ([]IntentStat, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	query := `
        SELECT intent, COUNT(*) AS hits
        FROM exchanges
        GROUP BY intent
        ORDER BY hits DESC, intent ASC;
    `

	stats := []IntentStat{}
	if err := s.db.SelectContext(ctx, &stats, query); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Error getting intent stats", "error", err)
		return nil, fmt.Errorf("failed to get intent stats: %w", err)
	}
	return stats, nil
}

func (s *sqlxStore) DeleteAllExchanges(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM exchanges`)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error deleting all exchanges", "error", err)
		return 0, fmt.Errorf("failed to delete all exchanges: %w", err)
	}

	count, _ := result.RowsAffected()
	s.logger.InfoContext(ctx, "Deleted all exchanges", "count", count)
	return count, nil
}

func (s *sqlxStore) DeleteExchangesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if cutoff.IsZero() {
		return 0, fmt.Errorf("cutoff cannot be zero")
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM exchanges WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		if isContextErr(err) {
			s.logger.WarnContext(ctx, "Context timeout or cancellation while pruning exchanges", "error", err)
			return 0, err
		}
		s.logger.ErrorContext(ctx, "Error pruning exchanges", "cutoff", cutoff, "error", err)
		return 0, fmt.Errorf("failed to delete exchanges before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	count, _ := result.RowsAffected()
	s.logger.InfoContext(ctx, "Pruned old exchanges", "cutoff", cutoff, "count", count)
	return count, nil
}

// RunSQLMaintenance executes VACUUM, which SQLite requires to run outside a transaction.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		s.logger.WarnContext(ctx, "Failed to set busy timeout", "error", err)
	}

	_, err := s.db.ExecContext(ctx, "VACUUM;")
	switch {
	case isContextErr(err):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
