package v1handler

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Events upgrades to a websocket and streams progress events of the caller's
// account until either side goes away. Clients only ever read; anything they
// send is discarded.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.authenticate(r, true)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userId", user.ID), zap.Stringer("accountId", user.AccountID))

	sub, err := h.deps.Events.Subscribe(ctx, user.AccountID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	defer func() { _ = sub.Close() }()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already answered the request
		logger.Debug(ctx, "websocket upgrade failed", zap.Error(err))

		return
	}
	logger.Debug(ctx, "event stream opened")

	pongWait := 2 * h.options.PingInterval
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// the read loop notices closed connections and answers control frames
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.options.PingInterval)
	defer ticker.Stop()

	h.stream(ctx, conn, sub.Events(), ticker.C, closed)

	_ = conn.Close()
	<-closed
	logger.Debug(ctx, "event stream closed")
}

func (h *Handler) stream(ctx context.Context,
	conn *websocket.Conn,
	events <-chan domain.ScanEvent,
	ping <-chan time.Time,
	closed <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))

			return
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
