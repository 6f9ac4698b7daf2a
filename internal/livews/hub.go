// Package livews fans collection snapshots out to websocket subscribers.
// A client subscribes to a collection and immediately receives its current
// snapshot; every write to the collection re-delivers the full snapshot to
// all subscribers, including the one that issued the write.
package livews

import (
	"context"
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
)

// SnapshotSource serves the full current contents of a collection.
type SnapshotSource interface {
	Snapshot(ctx context.Context, collection string) (any, error)
}

var knownCollections = map[string]struct{}{
	"clients":  {},
	"sessions": {},
	"payments": {},
}

const snapshotTimeout = 10 * time.Second

type Hub struct {
	source      SnapshotSource
	conns       map[*Client]struct{}
	subscribers map[string]map[*Client]struct{}
	subscribe   chan subscription
	unsubscribe chan subscription
	unregister  chan *Client
	invalidate  chan string
}

type subscription struct {
	client     *Client
	collection string
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	// closed is touched only from the hub goroutine.
	closed bool
}

type envelope struct {
	Type       string `json:"type"`
	Collection string `json:"collection,omitempty"`
	Documents  any    `json:"documents,omitempty"`
	Error      string `json:"error,omitempty"`
}

func NewHub(source SnapshotSource) *Hub {
	return &Hub{
		source:      source,
		conns:       make(map[*Client]struct{}),
		subscribers: make(map[string]map[*Client]struct{}),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		unregister:  make(chan *Client),
		invalidate:  make(chan string, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 32),
	}
}

// Run owns all hub state. Everything mutating conns or subscribers goes
// through this goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.subscribe:
			if sub.client.closed {
				continue
			}
			h.conns[sub.client] = struct{}{}
			set, ok := h.subscribers[sub.collection]
			if !ok {
				set = make(map[*Client]struct{})
				h.subscribers[sub.collection] = set
			}
			set[sub.client] = struct{}{}
			h.pushSnapshot(sub.collection, sub.client)
		case sub := <-h.unsubscribe:
			if set, ok := h.subscribers[sub.collection]; ok {
				delete(set, sub.client)
				if len(set) == 0 {
					delete(h.subscribers, sub.collection)
				}
			}
		case client := <-h.unregister:
			h.drop(client)
		case collection := <-h.invalidate:
			h.pushSnapshot(collection, nil)
		}
	}
}

// Invalidate schedules a snapshot re-delivery for every subscriber of the
// collection. Safe to call from any goroutine.
func (h *Hub) Invalidate(collection string) {
	select {
	case h.invalidate <- collection:
	default:
		log.Printf("live hub invalidate queue full, dropping %s", collection)
	}
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// pushSnapshot delivers the collection snapshot to one client, or to every
// subscriber when client is nil.
func (h *Hub) pushSnapshot(collection string, client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	documents, err := h.source.Snapshot(ctx, collection)
	if err != nil {
		log.Printf("live hub snapshot %s: %v", collection, err)
		return
	}

	payload, err := json.Marshal(envelope{
		Type:       "snapshot",
		Collection: collection,
		Documents:  documents,
	})
	if err != nil {
		log.Printf("live hub encode snapshot %s: %v", collection, err)
		return
	}

	if client != nil {
		h.sendTo(client, payload)
		return
	}
	for subscriber := range h.subscribers[collection] {
		h.sendTo(subscriber, payload)
	}
}

// sendTo drops slow consumers rather than blocking the hub.
func (h *Hub) sendTo(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	if client.closed {
		return
	}
	client.closed = true
	delete(h.conns, client)
	for collection, set := range h.subscribers {
		delete(set, client)
		if len(set) == 0 {
			delete(h.subscribers, collection)
		}
	}
	close(client.send)
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type       string `json:"type"`
			Collection string `json:"collection"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			c.writeError("invalid message payload")
			continue
		}
		if _, ok := knownCollections[incoming.Collection]; !ok {
			c.writeError("unknown collection")
			continue
		}

		switch incoming.Type {
		case "subscribe":
			c.hub.subscribe <- subscription{client: c, collection: incoming.Collection}
		case "unsubscribe":
			c.hub.unsubscribe <- subscription{client: c, collection: incoming.Collection}
		default:
			c.writeError("unsupported message type")
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (c *Client) writeError(message string) {
	payload, err := json.Marshal(envelope{Type: "error", Error: message})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
