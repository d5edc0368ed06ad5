// Package store exposes the remote document store to the rest of
// sitekit: a process-wide connection handle, live collection and
// document subscriptions, one-shot equality queries, and
// create/delete writes. The handle is created once at startup and
// shared; its configuration never changes afterwards.
package store

import (
	"context"
	"os"

	"github.com/brotech/sitekit/pkg/connection"
	"github.com/brotech/sitekit/pkg/logger"
)

// Config holds the project credentials for the store connection.
type Config struct {
	// Endpoint is the WebSocket URL of the store RPC endpoint.
	Endpoint string
	// Project and Key identify the project to the store.
	Project string
	Key     string

	Logger logger.Logger
}

type Store struct {
	conn connection.Connection
	log  logger.Logger
}

// Open dials the store and performs the credential handshake. It is
// meant to be called once at process start.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.New(os.Stdout)
	}

	conn := connection.NewWebSocketConnection(connection.NewConnectionParams{
		BaseURL: cfg.Endpoint,
		Logger:  log,
	})
	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}
	if err := conn.Send(ctx, nil, connection.MethodAuth, cfg.Project, cfg.Key); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}

	return &Store{conn: conn, log: log}, nil
}

// FromConnection wraps an already established connection. Used by
// tests to inject in-memory transports.
func FromConnection(conn connection.Connection, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{conn: conn, log: log}
}

func (s *Store) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// Query runs a one-shot equality query against a collection and
// returns the matching records.
func (s *Store) Query(ctx context.Context, coll, field string, value any) ([]Record, error) {
	var records []Record
	if err := s.conn.Send(ctx, &records, connection.MethodQuery, coll, field, value); err != nil {
		return nil, err
	}
	return records, nil
}

// Create appends a new record and returns its assigned identifier.
// Creation is atomic: either the whole record exists afterwards or
// none of it does. There are no retries.
func (s *Store) Create(ctx context.Context, coll string, fields Record) (string, error) {
	var id string
	if err := s.conn.Send(ctx, &id, connection.MethodCreate, coll, fields); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes one record. Deleting an identifier that does not
// exist is a success: the desired state already holds.
func (s *Store) Delete(ctx context.Context, coll, id string) error {
	return s.conn.Send(ctx, nil, connection.MethodDelete, coll, id)
}
