// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signal provides a minimal synchronous signal / slot system
// used by all of the observable objects in viewplot: data cells,
// view intervals, axis markers and element views.
//
// A [Signal] has no payload: receivers capture whatever context they
// need in their closure and re-read the current state of the sender.
// Every [Signal.Connect] returns a [Token] that is later used to
// [Signal.Disconnect] or temporarily [Signal.Block] that receiver.
package signal

// Token identifies one connection on a [Signal]. The zero Token is
// never returned by Connect.
type Token uint64

type slot struct {
	tok     Token
	fun     func()
	blocked int
	removed bool
}

// Signal is a list of receiver functions that are called in
// connection order by [Signal.Emit]. The zero value is ready to use.
type Signal struct {
	last  Token
	slots []*slot
}

// Connect adds a receiver function and returns its token.
// A nil function is ignored and returns the zero token.
func (sg *Signal) Connect(fun func()) Token {
	if fun == nil {
		return 0
	}
	sg.last++
	sg.slots = append(sg.slots, &slot{tok: sg.last, fun: fun})
	return sg.last
}

// Disconnect removes the receiver with the given token,
// returning false if it was not connected.
func (sg *Signal) Disconnect(tok Token) bool {
	for i, s := range sg.slots {
		if s.tok == tok {
			s.removed = true
			// this copy makes sure there are no memory leaks
			copy(sg.slots[i:], sg.slots[i+1:])
			sg.slots[len(sg.slots)-1] = nil
			sg.slots = sg.slots[:len(sg.slots)-1]
			return true
		}
	}
	return false
}

// DisconnectAll removes every receiver.
func (sg *Signal) DisconnectAll() {
	for _, s := range sg.slots {
		s.removed = true
	}
	sg.slots = nil
}

// Block suppresses calls to the given receiver until a matching
// [Signal.Unblock]. Blocks nest.
func (sg *Signal) Block(tok Token) {
	if s := sg.find(tok); s != nil {
		s.blocked++
	}
}

// Unblock undoes one [Signal.Block].
func (sg *Signal) Unblock(tok Token) {
	if s := sg.find(tok); s != nil && s.blocked > 0 {
		s.blocked--
	}
}

// IsBlocked returns whether the given receiver is currently blocked.
func (sg *Signal) IsBlocked(tok Token) bool {
	s := sg.find(tok)
	return s != nil && s.blocked > 0
}

// Len returns the number of connected receivers.
func (sg *Signal) Len() int {
	return len(sg.slots)
}

// Emit calls all unblocked receivers, sequentially, in connection order.
// Receivers may connect or disconnect during the emission: receivers
// added during the emission are not called, and receivers removed
// before their turn are skipped.
func (sg *Signal) Emit() {
	n := len(sg.slots)
	if n == 0 {
		return
	}
	cur := make([]*slot, n)
	copy(cur, sg.slots)
	for _, s := range cur {
		if s.removed || s.blocked > 0 {
			continue
		}
		s.fun()
	}
}

func (sg *Signal) find(tok Token) *slot {
	if tok == 0 {
		return nil
	}
	for _, s := range sg.slots {
		if s.tok == tok {
			return s
		}
	}
	return nil
}
