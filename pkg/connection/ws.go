package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	gorilla "github.com/gorilla/websocket"

	"github.com/brotech/sitekit/internal/rand"
	"github.com/brotech/sitekit/pkg/constants"
	"github.com/brotech/sitekit/pkg/logger"
)

// DefaultDialer is the gorilla dialer used by WebSocketConnection,
// with compression enabled.
var DefaultDialer = &gorilla.Dialer{
	Proxy:             gorilla.DefaultDialer.Proxy,
	HandshakeTimeout:  gorilla.DefaultDialer.HandshakeTimeout,
	EnableCompression: true,
}

type WebSocketConnection struct {
	BaseConnection

	Conn     *gorilla.Conn
	connLock sync.Mutex

	// Timeout bounds each RPC round trip after the request has been
	// written. Set it to 0 to rely solely on the caller's context.
	Timeout time.Duration

	closeOnce sync.Once
	closeChan chan struct{}
}

func NewWebSocketConnection(p NewConnectionParams) *WebSocketConnection {
	log := p.Logger
	if log == nil {
		log = logger.New(os.Stdout)
	}

	return &WebSocketConnection{
		BaseConnection: BaseConnection{
			baseURL: p.BaseURL,
			logger:  log,

			responseChannels:     make(map[string]chan RPCResponse[json.RawMessage]),
			notificationChannels: make(map[string]chan Notification),
		},

		closeChan: make(chan struct{}),
		Timeout:   constants.DefaultTimeout,
	}
}

func (ws *WebSocketConnection) Connect(ctx context.Context) error {
	if ws.baseURL == "" {
		return constants.ErrNoEndpoint
	}

	conn, res, err := DefaultDialer.DialContext(ctx, ws.baseURL, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	ws.Conn = conn

	go ws.readLoop()
	return nil
}

// Close signals the reader, sends the close frame and closes the
// underlying connection. Safe to call more than once.
func (ws *WebSocketConnection) Close(ctx context.Context) error {
	var err error
	ws.closeOnce.Do(func() {
		close(ws.closeChan)

		ws.connLock.Lock()
		defer ws.connLock.Unlock()

		msg := gorilla.FormatCloseMessage(constants.CloseMessageCode, "")
		if werr := ws.Conn.WriteMessage(gorilla.CloseMessage, msg); werr != nil {
			ws.logger.Debug("failed to write close message", "error", werr)
		}

		err = ws.Conn.Close()
	})
	return err
}

// Send issues one RPC and waits for the matching response. The
// response is routed back by request ID; the result payload is
// unmarshaled into dest unless dest is nil.
func (ws *WebSocketConnection) Send(ctx context.Context, dest any, method string, params ...any) error {
	if ws.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ws.Timeout)
		defer cancel()
	}

	select {
	case <-ws.closeChan:
		return constants.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	id := rand.NewRequestID(constants.RequestIDLength)
	request := &RPCRequest{
		ID:     id,
		Method: method,
		Params: params,
	}

	responseChan, err := ws.createResponseChannel(id)
	if err != nil {
		return err
	}
	defer ws.removeResponseChannel(id)

	if err := ws.write(request); err != nil {
		return err
	}

	select {
	case <-ws.closeChan:
		return constants.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case res, open := <-responseChan:
		if !open {
			return errors.New("response channel closed")
		}
		if res.Error != nil {
			return res.Error
		}
		if dest == nil || res.Result == nil {
			return nil
		}
		if err := json.Unmarshal(*res.Result, dest); err != nil {
			return fmt.Errorf("error unmarshaling response: %w", err)
		}
		return nil
	}
}

func (ws *WebSocketConnection) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ws.connLock.Lock()
	defer ws.connLock.Unlock()
	return ws.Conn.WriteMessage(gorilla.TextMessage, data)
}

func (ws *WebSocketConnection) readLoop() {
	for {
		select {
		case <-ws.closeChan:
			return
		default:
			_, data, err := ws.Conn.ReadMessage()
			if err != nil {
				if ws.handleReadError(err) {
					return
				}
				continue
			}
			ws.handleFrame(data)
		}
	}
}

func (ws *WebSocketConnection) handleReadError(err error) bool {
	select {
	case <-ws.closeChan:
		return true
	default:
	}

	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) {
		return true
	}
	if gorilla.IsUnexpectedCloseError(err) || gorilla.IsCloseError(err, constants.CloseMessageCode) {
		return true
	}

	ws.logger.Error("read error", "error", err)
	return false
}

// handleFrame demultiplexes one incoming frame: responses carry the
// request ID they answer, pushes carry none and hold a Notification.
func (ws *WebSocketConnection) handleFrame(data []byte) {
	var res RPCResponse[json.RawMessage]
	if err := json.Unmarshal(data, &res); err != nil {
		ws.logger.Error("unparsable frame", "error", err)
		return
	}

	if res.ID != "" {
		responseChan, ok := ws.getResponseChannel(res.ID)
		if !ok {
			ws.logger.Debug("response for unknown request", "id", res.ID)
			return
		}
		responseChan <- res
		return
	}

	if res.Result == nil {
		ws.logger.Error("push frame without result")
		return
	}

	var notification Notification
	if err := json.Unmarshal(*res.Result, &notification); err != nil {
		ws.logger.Error("unparsable push frame", "error", err)
		return
	}
	if notification.ID == "" {
		ws.logger.Error("push frame without subscription id")
		return
	}

	ws.dispatchNotification(notification)
}
