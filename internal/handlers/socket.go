package handlers

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"wordgame/internal/game"
	"wordgame/internal/viewmodel"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = maxKeysLen
)

// socketMessage is what the server pushes: the round panel after a change,
// or the results of a key batch the client sent.
type socketMessage struct {
	Type    string                  `json:"type"`
	Round   viewmodel.RoundFragment `json:"round"`
	Results []game.ScoreResult      `json:"results,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// socketClient streams key batches in and round updates out for one
// connection. Every text frame from the peer is one key batch.
type socketClient struct {
	conn    *websocket.Conn
	sess    *game.Session
	store   *game.Store
	log     zerolog.Logger
	replies chan socketMessage
	done    chan struct{}
}

func newSocketClient(conn *websocket.Conn, sess *game.Session, store *game.Store, logger zerolog.Logger) *socketClient {
	return &socketClient{
		conn:    conn,
		sess:    sess,
		store:   store,
		log:     logger,
		replies: make(chan socketMessage, 16),
		done:    make(chan struct{}),
	}
}

func (c *socketClient) run() {
	go c.writePump()
	c.readPump()
}

func (c *socketClient) readPump() {
	defer func() {
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug().Err(err).Msg("websocket read")
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		msg := socketMessage{Type: "results"}
		results, err := c.sess.HandleKeys(string(data))
		if err != nil {
			msg.Type, msg.Error = "error", err.Error()
		}
		msg.Results = results
		msg.Round = viewmodel.FromSnapshot(c.sess.Snapshot())
		c.store.Wake(c.sess.ID)
		select {
		case c.replies <- msg:
		default:
			c.log.Warn().Msg("reply buffer full, message dropped")
		}
	}
}

func (c *socketClient) writePump() {
	sub, cancel, ok := c.store.Subscribe(c.sess.ID)
	if !ok {
		c.conn.Close()
		return
	}
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		cancel()
		ticker.Stop()
		c.conn.Close()
	}()

	if !c.write(socketMessage{Type: "round", Round: viewmodel.FromSnapshot(c.sess.Snapshot())}) {
		return
	}
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.replies:
			if !c.write(msg) {
				return
			}
		case _, open := <-sub:
			if !open {
				return
			}
			if !c.write(socketMessage{Type: "round", Round: viewmodel.FromSnapshot(c.sess.Snapshot())}) {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *socketClient) write(msg socketMessage) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.log.Debug().Err(err).Msg("websocket write")
		return false
	}
	return true
}
