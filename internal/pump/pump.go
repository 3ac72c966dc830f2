// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pump provides an infinitely buffered channel.
//
// The desktop host's OS thread must never block on the goroutine running the
// apps: that goroutine may itself be waiting for the OS thread to execute GL
// calls. Input is therefore handed over through a Pump.
package pump

// Pump delivers values sent with Send on the channel returned by C, in
// order. Send returns promptly whether or not anything is receiving.
type Pump[E any] struct {
	in      chan E
	out     chan E
	release chan struct{}
}

// New starts a Pump. Call Release to stop it.
func New[E any]() *Pump[E] {
	p := &Pump[E]{
		in:      make(chan E),
		out:     make(chan E),
		release: make(chan struct{}),
	}
	go p.run()
	return p
}

// C returns the delivery channel. It is never closed.
func (p *Pump[E]) C() <-chan E { return p.out }

// Send queues e. After Release it drops e.
func (p *Pump[E]) Send(e E) {
	select {
	case p.in <- e:
	case <-p.release:
	}
}

// Release stops the pump. Values not yet received are dropped.
func (p *Pump[E]) Release() {
	close(p.release)
}

func (p *Pump[E]) run() {
	// The queue is a ring buffer whose size is a power of two. i is the
	// index of the next value out, j of the next value in.
	const initialSize = 16
	i, j, buf, mask := 0, 0, make([]E, initialSize), initialSize-1
	var zero E
	for {
		out := p.out
		if i == j {
			out = nil
		}
		select {
		case out <- buf[i&mask]:
			buf[i&mask] = zero
			i++
		case e := <-p.in:
			if j-i == len(buf) {
				b := make([]E, 2*len(buf))
				n := copy(b, buf[i&mask:])
				copy(b[n:], buf[:i&mask])
				i, j = 0, len(buf)
				buf, mask = b, len(b)-1
			}
			buf[j&mask] = e
			j++
		case <-p.release:
			return
		}
	}
}
