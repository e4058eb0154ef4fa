// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package overlay provides a manager for transient presentations such as
// date picker popovers and dropdown menus. Controls register their overlay
// when they are created and deregister it when they are disposed of; the
// host reports outside clicks to the manager which closes every open
// overlay other than the one clicked on.
package overlay

import (
	"sync"
)

// Overlay is implemented by controls with a presentation that can be
// closed by the manager.
type Overlay interface {
	// IsOpen returns true if the overlay is currently displayed.
	IsOpen() bool
	// Close hides the overlay. It must not call back into the Manager.
	Close()
}

// Handle identifies a registered overlay. The zero Handle never refers
// to a registered overlay.
type Handle uint64

// Manager tracks registered overlays. It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	next     Handle
	overlays map[Handle]Overlay // GUARDED_BY(mu)
}

// NewManager returns a new, empty, Manager.
func NewManager() *Manager {
	return &Manager{overlays: map[Handle]Overlay{}}
}

var defaultManager = NewManager()

// Default returns the process wide Manager.
func Default() *Manager {
	return defaultManager
}

// Register adds o to the set of managed overlays.
func (m *Manager) Register(o Overlay) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.overlays[m.next] = o
	return m.next
}

// Deregister removes the overlay with handle h, it is a no-op if h is
// not registered.
func (m *Manager) Deregister(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.overlays, h)
}

// Len returns the number of registered overlays.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.overlays)
}

// Registered returns true if h refers to a registered overlay.
func (m *Manager) Registered(h Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.overlays[h]
	return ok
}

// openExcept returns the open overlays other than the one for except.
// Overlays are closed outside of the lock since closing may trigger
// arbitrary callbacks in the owning control.
func (m *Manager) openExcept(except Handle) []Overlay {
	m.mu.Lock()
	defer m.mu.Unlock()
	var open []Overlay
	for h, o := range m.overlays {
		if h != except && o.IsOpen() {
			open = append(open, o)
		}
	}
	return open
}

// OutsideClick is called by the host when a click occurs. The overlay
// that was clicked on, if any, is specified by target and is left
// untouched; all other open overlays are closed. A zero target closes
// every open overlay. It returns the number of overlays closed.
func (m *Manager) OutsideClick(target Handle) int {
	open := m.openExcept(target)
	for _, o := range open {
		o.Close()
	}
	return len(open)
}

// Activate is called when the overlay with handle h is opened so that
// any other open overlays are closed.
func (m *Manager) Activate(h Handle) int {
	if h == 0 {
		return 0
	}
	return m.OutsideClick(h)
}

// CloseAll closes every open overlay.
func (m *Manager) CloseAll() int {
	return m.OutsideClick(0)
}
