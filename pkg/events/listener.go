package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// NotifyHandler receives every notification the listener picks up.
// Called from the receive loop; implementations must not block.
type NotifyHandler func(channel string, payload []byte)

// connCommand is a LISTEN or UNLISTEN statement waiting to be executed by
// the receive loop, which is the sole goroutine allowed on the connection.
type connCommand struct {
	sql   string
	reply chan error
}

// reconnect backoff bounds for the dedicated LISTEN connection.
const (
	redialBase = time.Second
	redialMax  = 30 * time.Second
)

// commandPollTimeout bounds each WaitForNotification call so the loop
// regularly returns to service queued LISTEN/UNLISTEN commands.
const commandPollTimeout = 100 * time.Millisecond

// NotifyListener tails PostgreSQL NOTIFY traffic on the audit channels and
// hands each delivery to a handler. The publisher never consumes its own
// broadcasts; this exists for operational tooling and for tests observing
// the feed in process.
type NotifyListener struct {
	connString string
	handler    NotifyHandler

	connMu sync.Mutex
	conn   *pgx.Conn // owned by the receive loop once started

	subsMu sync.RWMutex
	subs   map[string]bool // channels with an active LISTEN

	// commands funnels LISTEN/UNLISTEN through the receive loop. Running
	// Exec concurrently with WaitForNotification trips pgx's "conn busy"
	// guard, so every statement goes through here instead.
	commands chan connCommand
	running  atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener builds a listener over its own dedicated connection.
// NOTIFY delivery is database-wide, so connString must not carry a
// schema-scoped search_path.
func NewNotifyListener(connString string, handler NotifyHandler) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		handler:    handler,
		subs:       make(map[string]bool),
		commands:   make(chan connCommand, 16),
	}
}

// Start opens the LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	// The loop gets its own cancellable context so Stop can wind it down
	// before the connection is closed underneath it.
	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.run(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for the channel. Idempotent per channel.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if l.subscribed(channel) {
		return nil
	}
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	name := pgx.Identifier{channel}.Sanitize()
	if err := l.execOnConn(ctx, "LISTEN "+name); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", name, err)
	}

	l.subsMu.Lock()
	l.subs[channel] = true
	l.subsMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for the channel. A listener that was never
// started, or a channel never subscribed, is a no-op.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.subscribed(channel) {
		return nil
	}
	if !l.running.Load() {
		return nil
	}

	name := pgx.Identifier{channel}.Sanitize()
	if err := l.execOnConn(ctx, "UNLISTEN "+name); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", name, err)
	}

	l.subsMu.Lock()
	delete(l.subs, channel)
	l.subsMu.Unlock()
	return nil
}

// execOnConn queues a statement for the receive loop and waits for its
// result.
func (l *NotifyListener) execOnConn(ctx context.Context, sql string) error {
	cmd := connCommand{sql: sql, reply: make(chan error, 1)}

	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// subscribed reports whether a LISTEN is active for the channel.
func (l *NotifyListener) subscribed(channel string) bool {
	l.subsMu.RLock()
	defer l.subsMu.RUnlock()
	return l.subs[channel]
}

// run owns the connection: it alternates between draining queued commands
// and waiting for notifications, and redials when the connection drops.
func (l *NotifyListener) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCommands(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.redial(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, commandPollTimeout)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return // shutting down
			}
			if waitCtx.Err() != nil {
				continue // poll timeout, go service the command queue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.redial(ctx)
			continue
		}

		l.handler(notification.Channel, []byte(notification.Payload))
	}
}

// drainCommands executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainCommands(ctx context.Context) {
	for {
		select {
		case cmd := <-l.commands:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.reply <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.reply <- err
		default:
			return
		}
	}
}

// redial replaces a dead connection, backing off between attempts, and
// re-issues LISTEN for every subscribed channel on the new connection.
func (l *NotifyListener) redial(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := redialBase
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, redialMax)
			continue
		}
		l.conn = conn

		l.subsMu.RLock()
		for ch := range l.subs {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.subsMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop winds down the receive loop, waits for it to exit, then closes the
// connection. Closing first would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
