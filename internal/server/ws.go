package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Frame types exchanged on /ws.
const (
	FrameChat  = "chat"
	FrameReset = "reset"
	FramePing  = "ping"
	FrameReply = "reply"
	FramePong  = "pong"
	FrameError = "error"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxFrame   = 64 << 10
)

// Frame is one JSON message on the websocket. Clients send chat, reset
// and ping frames; the server answers with reply, reset, pong or error.
type Frame struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Level   string `json:"level,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Audio   string `json:"audio,omitempty"`
	Error   string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	recordRequest("ws")
	header := http.Header{}
	key := sessionKey(header, r)

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	recordWebSocket(1)
	defer recordWebSocket(-1)

	c := &wsConn{
		srv:    s,
		conn:   conn,
		key:    key,
		logger: s.logger.With(slog.String("session", key)),
		in:     make(chan *Frame, 16),
		out:    make(chan *Frame, 16),
	}
	if err := c.run(r.Context()); err != nil {
		c.logger.Debug("WebSocket closed", slog.String("reason", err.Error()))
	}
}

// wsConn serves one websocket. Frames are processed one at a time, so a
// client's exchanges are answered in the order they were sent.
type wsConn struct {
	srv    *Server
	conn   *websocket.Conn
	key    string
	logger *slog.Logger
	in     chan *Frame
	out    chan *Frame
}

func (c *wsConn) run(ctx context.Context) error {
	c.logger.Info("WebSocket connected")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := c.readFrames(ctx); err != nil {
			errCh <- fmt.Errorf("read frames: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := c.writeFrames(ctx); err != nil {
			errCh <- fmt.Errorf("write frames: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.processFrames(ctx)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	cancel()
	// unblocks a pending read
	if cerr := c.conn.Close(); cerr != nil && err == nil {
		err = cerr
	}
	wg.Wait()

	c.logger.Info("WebSocket disconnected")
	if isNormalClose(err) {
		return nil
	}
	return err
}

func (c *wsConn) readFrames(ctx context.Context) error {
	c.conn.SetReadLimit(maxFrame)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			return err
		}
		c.logger.Debug("Received frame", slog.String("type", frame.Type))

		select {
		case c.in <- &frame:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *wsConn) writeFrames(ctx context.Context) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return nil
		case frame := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				return err
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

func (c *wsConn) processFrames(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-c.in:
			c.handleFrame(ctx, frame)
		}
	}
}

func (c *wsConn) handleFrame(ctx context.Context, frame *Frame) {
	switch frame.Type {
	case FrameChat:
		if strings.TrimSpace(frame.Message) == "" {
			c.send(ctx, &Frame{Type: FrameError, Error: "message is required"})
			return
		}
		text, audio, err := c.srv.reply(ctx, c.key, frame.Message, frame.Level, frame.Topic)
		if err != nil {
			c.logger.Error("Error processing chat frame", slog.String("error", err.Error()))
			c.send(ctx, &Frame{
				Type:    FrameError,
				Error:   "An error occurred while processing your request",
				Message: text,
			})
			return
		}
		c.send(ctx, &Frame{
			Type:    FrameReply,
			Message: text,
			Audio:   base64.StdEncoding.EncodeToString(audio),
		})

	case FrameReset:
		c.srv.svc.ResetSession(c.key)
		c.send(ctx, &Frame{Type: FrameReset})

	case FramePing:
		c.send(ctx, &Frame{Type: FramePong, Message: frame.Message})

	default:
		c.logger.Warn("Unknown frame type", slog.String("type", frame.Type))
		c.send(ctx, &Frame{Type: FrameError, Error: fmt.Sprintf("unknown frame type %q", frame.Type)})
	}
}

func (c *wsConn) send(ctx context.Context, frame *Frame) {
	select {
	case c.out <- frame:
	case <-ctx.Done():
	}
}

func isNormalClose(err error) bool {
	if err == nil {
		return true
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		switch ce.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived:
			return true
		}
	}
	return errors.Is(err, net.ErrClosed)
}
