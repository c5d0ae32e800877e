// Package bus is the in-process topic bus services talk over: hierarchical
// topics with "+" and "#" wildcards, retained messages and request/reply.
package bus

import (
	"context"
	"sync"
	"sync/atomic"
)

// Wildcard tokens. "+" matches exactly one level, "#" matches the rest of
// the topic, including nothing.
const (
	Wild      = "+"
	MultiWild = "#"
)

// Topic is a sequence of comparable tokens, usually strings and ints.
type Topic []any

// T builds a topic. It panics on a token that cannot be a map key.
func T(tokens ...any) Topic {
	probe := make(map[any]struct{}, len(tokens))
	for _, tok := range tokens {
		probe[tok] = struct{}{}
	}
	return Topic(tokens)
}

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
	ReplyTo  Topic
}

type Subscription struct {
	topic  Topic
	ch     chan *Message
	conn   *Connection
	closed bool
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

type node struct {
	children map[any]*node
	subs     []*Subscription
	retained *Message
}

func (n *node) child(tok any, create bool) *node {
	if c := n.children[tok]; c != nil || !create {
		return c
	}
	if n.children == nil {
		n.children = make(map[any]*node)
	}
	c := &node{}
	n.children[tok] = c
	return c
}

type Bus struct {
	mu   sync.Mutex
	root *node
	qLen int
	seq  atomic.Uint64
}

// NewBus creates a bus whose subscriptions buffer queueLen messages.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{root: &node{}, qLen: queueLen}
}

func (b *Bus) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

func (b *Bus) subscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, tok := range sub.topic {
		n = n.child(tok, true)
	}
	n.subs = append(n.subs, sub)

	var kept []*Message
	collectRetained(b.root, sub.topic, 0, &kept)
	for _, m := range kept {
		deliver(sub, m)
	}
}

// Publish delivers msg to every matching subscription and updates the
// retained slot of its topic. A retained message with a nil payload clears
// the slot.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var subs []*Subscription
	match(b.root, msg.Topic, 0, &subs)
	for _, s := range subs {
		deliver(s, msg)
	}

	if !msg.Retained {
		return
	}
	n := b.root
	for _, tok := range msg.Topic {
		if n = n.child(tok, msg.Payload != nil); n == nil {
			return
		}
	}
	if msg.Payload == nil {
		n.retained = nil
	} else {
		n.retained = msg
	}
}

// deliver never blocks: a full queue drops its oldest message.
func deliver(s *Subscription, m *Message) {
	for {
		select {
		case s.ch <- m:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func match(n *node, topic Topic, i int, out *[]*Subscription) {
	if h := n.children[MultiWild]; h != nil {
		*out = append(*out, h.subs...)
	}
	if i == len(topic) {
		*out = append(*out, n.subs...)
		return
	}
	if c := n.children[topic[i]]; c != nil {
		match(c, topic, i+1, out)
	}
	if topic[i] != Wild {
		if c := n.children[Wild]; c != nil {
			match(c, topic, i+1, out)
		}
	}
}

func collectRetained(n *node, pat Topic, i int, out *[]*Message) {
	if i == len(pat) {
		if n.retained != nil {
			*out = append(*out, n.retained)
		}
		return
	}
	switch pat[i] {
	case MultiWild:
		collectAll(n, out)
	case Wild:
		for k, c := range n.children {
			if k == Wild || k == MultiWild {
				continue
			}
			collectRetained(c, pat, i+1, out)
		}
	default:
		if c := n.children[pat[i]]; c != nil {
			collectRetained(c, pat, i+1, out)
		}
	}
}

func collectAll(n *node, out *[]*Message) {
	if n.retained != nil {
		*out = append(*out, n.retained)
	}
	for _, c := range n.children {
		collectAll(c, out)
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	path := []*node{n}
	for _, tok := range sub.topic {
		if n = n.child(tok, false); n == nil {
			return
		}
		path = append(path, n)
	}
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}

	for i := len(sub.topic) - 1; i >= 0; i-- {
		c := path[i+1]
		if len(c.subs) != 0 || len(c.children) != 0 || c.retained != nil {
			break
		}
		delete(path[i].children, sub.topic[i])
	}
}

// Connection owns a set of subscriptions; Disconnect drops them all.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(topic, payload, retained)
}

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{topic: topic, ch: make(chan *Message, c.bus.qLen), conn: c}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	c.bus.subscribe(sub)
	return sub
}

func (c *Connection) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	if sub.closed {
		c.mu.Unlock()
		return
	}
	sub.closed = true
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.bus.unsubscribe(sub)
	close(sub.ch)
}

func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := append([]*Subscription(nil), c.subs...)
	c.mu.Unlock()
	for _, s := range subs {
		c.Unsubscribe(s)
	}
}

// Request gives msg a private reply topic, subscribes to it and publishes
// msg. The caller owns the returned subscription.
func (c *Connection) Request(msg *Message) *Subscription {
	msg.ReplyTo = T("_reply", c.id, int(c.bus.seq.Add(1)))
	sub := c.Subscribe(msg.ReplyTo)
	c.Publish(msg)
	return sub
}

// RequestWait sends msg and blocks for the first reply or ctx.
func (c *Connection) RequestWait(ctx context.Context, msg *Message) (*Message, error) {
	sub := c.Request(msg)
	defer c.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		return m, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Reply answers req on its reply topic. Requests without one are ignored.
func (c *Connection) Reply(req *Message, payload any, retained bool) {
	if len(req.ReplyTo) == 0 {
		return
	}
	c.Publish(c.NewMessage(req.ReplyTo, payload, retained))
}
