package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"
)

// ipcMessage covers both reply and event shapes of the mpv JSON IPC
// protocol. Replies carry error/data/request_id; events carry event/name
// and, for property-change, data.
type ipcMessage struct {
	Error     string          `json:"error,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID int64           `json:"request_id,omitempty"`

	Event  string `json:"event,omitempty"`
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// ipcConn is a newline-delimited JSON connection to an mpv IPC socket.
// Writes are serialized; the read loop routes replies to waiters and
// forwards events to the event callback.
type ipcConn struct {
	conn net.Conn

	writeMu sync.Mutex
	writer  *bufio.Writer

	mu      sync.Mutex
	pending map[int64]chan ipcMessage
	nextID  int64
	closed  bool

	onEvent func(ipcMessage)
}

// dialIPC connects to the socket, retrying until the engine has created
// it or the deadline passes.
func dialIPC(path string, deadline time.Duration, onEvent func(ipcMessage)) (*ipcConn, error) {
	var conn net.Conn
	var err error
	end := time.Now().Add(deadline)
	for {
		conn, err = net.Dial("unix", path)
		if err == nil {
			break
		}
		if time.Now().After(end) {
			return nil, fmt.Errorf("dial mpv socket %s: %w", path, err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	c := &ipcConn{
		conn:    conn,
		writer:  bufio.NewWriter(conn),
		pending: make(map[int64]chan ipcMessage),
		onEvent: onEvent,
	}
	go c.readLoop()
	return c, nil
}

func (c *ipcConn) readLoop() {
	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		if msg.Event != "" {
			if c.onEvent != nil {
				c.onEvent(msg)
			}
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[msg.RequestID]
		if ok {
			delete(c.pending, msg.RequestID)
		}
		c.mu.Unlock()
		if ok {
			ch <- msg
		}
	}
	c.failPending()
}

// failPending unblocks every waiter after the connection is gone.
func (c *ipcConn) failPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, ch := range c.pending {
		delete(c.pending, id)
		ch <- ipcMessage{Error: "connection closed"}
	}
}

// send writes a command without waiting for the reply. Playback commands
// are fire-and-forget; their effect comes back as property events.
func (c *ipcConn) send(args ...any) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("ipc: connection closed")
	}
	c.nextID++
	id := c.nextID
	c.mu.Unlock()

	return c.write(ipcRequest{Command: args, RequestID: id})
}

// call writes a command and waits for its reply. Used during setup where
// failures must be surfaced (property observation, loadfile).
func (c *ipcConn) call(args ...any) (json.RawMessage, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("ipc: connection closed")
	}
	c.nextID++
	id := c.nextID
	ch := make(chan ipcMessage, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	if err := c.write(ipcRequest{Command: args, RequestID: id}); err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, err
	}

	select {
	case msg := <-ch:
		if msg.Error != "" && msg.Error != "success" {
			return nil, fmt.Errorf("ipc: %s", msg.Error)
		}
		return msg.Data, nil
	case <-time.After(5 * time.Second):
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, fmt.Errorf("ipc: reply timeout")
	}
}

func (c *ipcConn) write(req ipcRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.writer.Write(payload); err != nil {
		return err
	}
	if err := c.writer.WriteByte('\n'); err != nil {
		return err
	}
	return c.writer.Flush()
}

func (c *ipcConn) close() error {
	return c.conn.Close()
}
