package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quickaid/logger"
	"quickaid/models"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

const mysqlDuplicateEntry = 1062

// Email uses a binary collation so the listing filter is an exact match.
const createTicketsTable = `
	CREATE TABLE IF NOT EXISTS tickets (
		id CHAR(36) NOT NULL PRIMARY KEY,
		seq BIGINT NOT NULL AUTO_INCREMENT UNIQUE,
		title TEXT NOT NULL,
		email VARCHAR(320) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'New',
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		INDEX idx_tickets_email (email)
	)`

const selectTickets = "SELECT id, title, email, category, description, status, created_at, updated_at FROM tickets"

// MySQLStore keeps tickets in a single table. Rows are listed in insertion
// order via the seq column.
type MySQLStore struct {
	db *sql.DB
}

func OpenMySQL(ctx context.Context, dsn string) (*MySQLStore, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	s := NewMySQLStore(conn)
	if err := s.Migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	logger.L.Info("connected to mysql ticket store", zap.Int("max_open_conns", 25))
	return s, nil
}

func NewMySQLStore(conn *sql.DB) *MySQLStore {
	return &MySQLStore{db: conn}
}

func (s *MySQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTicketsTable); err != nil {
		return fmt.Errorf("create tickets table: %w", err)
	}
	return nil
}

func (s *MySQLStore) Create(ctx context.Context, t *models.Ticket) error {
	query := "INSERT INTO tickets (id, title, email, category, description, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Email, t.Category, t.Description, string(t.Status), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (s *MySQLStore) List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if f.Email != "" {
		rows, err = s.db.QueryContext(ctx, selectTickets+" WHERE email = ? ORDER BY seq", f.Email)
	} else {
		rows, err = s.db.QueryContext(ctx, selectTickets+" ORDER BY seq")
	}
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		var t models.Ticket
		var status string
		if err := rows.Scan(&t.ID, &t.Title, &t.Email, &t.Category, &t.Description, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.Status = models.Status(status)
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}

func (s *MySQLStore) Close(context.Context) error {
	return s.db.Close()
}
