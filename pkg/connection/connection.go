// Package connection implements the JSON-RPC WebSocket transport to
// the remote document store. Responses are correlated with requests by
// ID; frames without a request ID are live-subscription pushes and are
// routed to per-subscription notification channels.
package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/brotech/sitekit/pkg/constants"
	"github.com/brotech/sitekit/pkg/logger"
)

// Connection is the store transport consumed by pkg/store. It is
// satisfied by WebSocketConnection and by in-memory fakes in tests.
type Connection interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	// Send issues one RPC and unmarshals the result into dest.
	// A nil dest discards the result.
	Send(ctx context.Context, dest any, method string, params ...any) error
	// Notifications registers a push channel for a subscription ID.
	// The channel must be registered before the subscribe RPC is sent
	// so that no push can arrive unrouted.
	Notifications(id string) (chan Notification, error)
	// CloseNotifications releases the push channel. Idempotent.
	CloseNotifications(id string)
}

type NewConnectionParams struct {
	BaseURL string
	Logger  logger.Logger
}

// BaseConnection carries the channel bookkeeping shared by transport
// implementations.
type BaseConnection struct {
	baseURL string
	logger  logger.Logger

	responseChannels     map[string]chan RPCResponse[json.RawMessage]
	responseChannelsLock sync.RWMutex

	notificationChannels     map[string]chan Notification
	notificationChannelsLock sync.RWMutex
}

const notificationBuffer = 16

func (bc *BaseConnection) createResponseChannel(id string) (chan RPCResponse[json.RawMessage], error) {
	bc.responseChannelsLock.Lock()
	defer bc.responseChannelsLock.Unlock()

	if _, ok := bc.responseChannels[id]; ok {
		return nil, fmt.Errorf("%w: %v", constants.ErrIDInUse, id)
	}

	ch := make(chan RPCResponse[json.RawMessage], 1)
	bc.responseChannels[id] = ch

	return ch, nil
}

func (bc *BaseConnection) removeResponseChannel(id string) {
	bc.responseChannelsLock.Lock()
	defer bc.responseChannelsLock.Unlock()
	delete(bc.responseChannels, id)
}

func (bc *BaseConnection) getResponseChannel(id string) (chan RPCResponse[json.RawMessage], bool) {
	bc.responseChannelsLock.RLock()
	defer bc.responseChannelsLock.RUnlock()
	ch, ok := bc.responseChannels[id]
	return ch, ok
}

func (bc *BaseConnection) Notifications(id string) (chan Notification, error) {
	bc.notificationChannelsLock.Lock()
	defer bc.notificationChannelsLock.Unlock()

	if _, ok := bc.notificationChannels[id]; ok {
		return nil, fmt.Errorf("%w: %v", constants.ErrIDInUse, id)
	}

	ch := make(chan Notification, notificationBuffer)
	bc.notificationChannels[id] = ch

	return ch, nil
}

func (bc *BaseConnection) CloseNotifications(id string) {
	bc.notificationChannelsLock.Lock()
	defer bc.notificationChannelsLock.Unlock()

	ch, ok := bc.notificationChannels[id]
	if !ok {
		return
	}
	delete(bc.notificationChannels, id)
	close(ch)
}

// dispatchNotification routes a push to its subscription channel. The
// send never blocks the reader: a full channel drops the push, which
// is safe because every push is a full-membership snapshot and the
// next one supersedes it.
func (bc *BaseConnection) dispatchNotification(n Notification) {
	bc.notificationChannelsLock.RLock()
	defer bc.notificationChannelsLock.RUnlock()

	ch, ok := bc.notificationChannels[n.ID]
	if !ok {
		bc.logger.Debug("push for unknown subscription", "id", n.ID)
		return
	}

	select {
	case ch <- n:
	default:
		bc.logger.Warn("subscription channel full, dropping snapshot", "id", n.ID)
	}
}
