// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

// Connection is one receiver connected to one signal.
type Connection struct {
	Signal *Signal
	Token  Token
}

// Connections records a group of connections made on behalf of one
// receiver, so that they can all be severed at once with [Connections.Close]
// when the receiver stops observing (or drops) the senders.
type Connections struct {
	conns []Connection
}

// Connect connects fun to sig and records the connection.
func (cs *Connections) Connect(sig *Signal, fun func()) Connection {
	c := Connection{Signal: sig, Token: sig.Connect(fun)}
	if c.Token != 0 {
		cs.conns = append(cs.conns, c)
	}
	return c
}

// Len returns the number of recorded connections.
func (cs *Connections) Len() int {
	return len(cs.conns)
}

// Close disconnects every recorded connection.
func (cs *Connections) Close() {
	for _, c := range cs.conns {
		c.Signal.Disconnect(c.Token)
	}
	cs.conns = nil
}

// Block blocks a recorded connection.
func (c Connection) Block() {
	if c.Signal != nil {
		c.Signal.Block(c.Token)
	}
}

// Unblock unblocks a recorded connection.
func (c Connection) Unblock() {
	if c.Signal != nil {
		c.Signal.Unblock(c.Token)
	}
}

// Disconnect disconnects the connection.
func (c Connection) Disconnect() {
	if c.Signal != nil {
		c.Signal.Disconnect(c.Token)
	}
}
