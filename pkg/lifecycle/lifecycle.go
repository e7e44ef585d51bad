// Viewable
// Copyright (c) 2026 The Viewable Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Viewable.
//
// Viewable is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Viewable is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Viewable.  If not, see <http://www.gnu.org/licenses/>.

// Package lifecycle adapts a toolkit's native shown/hidden/destroyed
// notifications for one widget into a simplified callback contract: a
// one-shot map, repeatable remap/unmap, and a terminal destroy.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sprigui/viewable/pkg/toolkit"
)

// Sink receives the simplified lifecycle callbacks for one bound widget.
// OnMap fires on the widget's first appearance, OnRemap on every later
// appearance, OnUnmap whenever the widget is hidden without being destroyed,
// and OnDestroy exactly once when the widget is torn down.
type Sink interface {
	OnMap()
	OnRemap()
	OnUnmap()
	OnDestroy()
}

// Callbacks assembles a Sink from plain functions. Nil entries are no-ops.
type Callbacks struct {
	OnMap     func()
	OnRemap   func()
	OnUnmap   func()
	OnDestroy func()
}

// Sink returns the callback set as a Sink.
func (c Callbacks) Sink() Sink {
	return funcSink{c}
}

type funcSink struct {
	c Callbacks
}

func (s funcSink) OnMap() {
	if s.c.OnMap != nil {
		s.c.OnMap()
	}
}

func (s funcSink) OnRemap() {
	if s.c.OnRemap != nil {
		s.c.OnRemap()
	}
}

func (s funcSink) OnUnmap() {
	if s.c.OnUnmap != nil {
		s.c.OnUnmap()
	}
}

func (s funcSink) OnDestroy() {
	if s.c.OnDestroy != nil {
		s.c.OnDestroy()
	}
}

// Kit is the slice of the toolkit contract the adapter needs.
type Kit interface {
	toolkit.Binder
	toolkit.Focuser
}

// Binding subscribes to one widget's structural notifications and
// re-dispatches them to a Sink. A binding is active from Activate until the
// widget's destroy notification fires or Deactivate is called; after that no
// further callbacks are dispatched, even if notifications for other widgets
// sharing the bound events still arrive.
type Binding struct {
	kit    Kit
	body   toolkit.Widget
	master toolkit.Widget
	sink   Sink

	shownID     toolkit.HandlerID
	hiddenID    toolkit.HandlerID
	destroyedID toolkit.HandlerID

	previouslyMapped bool
	active           bool
}

// New creates an inactive binding for body. The widget's parent at creation
// time is remembered as the master used for post-destroy focus recovery.
func New(kit Kit, body toolkit.Widget, sink Sink) *Binding {
	return &Binding{
		kit:    kit,
		body:   body,
		master: body.Parent(),
		sink:   sink,
	}
}

// Attach creates a binding for body and activates it. The returned bool is
// false when the widget no longer exists and nothing was bound.
func Attach(kit Kit, body toolkit.Widget, sink Sink) (*Binding, bool) {
	b := New(kit, body, sink)
	ok := b.Activate()
	return b, ok
}

// Body returns the bound widget.
func (b *Binding) Body() toolkit.Widget {
	return b.body
}

// Master returns the widget's parent as captured at binding time, or nil.
func (b *Binding) Master() toolkit.Widget {
	return b.master
}

// Active reports whether the binding is currently dispatching callbacks.
func (b *Binding) Active() bool {
	return b.active
}

// Activate subscribes to the widget's shown, hidden and destroyed
// notifications. It returns false, without binding anything, when the widget
// no longer exists; this makes activation against an already destroyed
// widget a silent no-op. Activating an active binding is a no-op returning
// true.
//
// If the widget is already visible at activation time, OnMap is invoked
// synchronously before Activate returns: toolkits do not re-deliver a shown
// notification for windows that were mapped before the binding existed.
func (b *Binding) Activate() bool {
	if b.active {
		return true
	}
	if b.body == nil || !b.body.Exists() {
		return false
	}
	b.shownID, _ = b.kit.Bind(b.body, toolkit.EventShown, b.handleShown)
	b.hiddenID, _ = b.kit.Bind(b.body, toolkit.EventHidden, b.handleHidden)
	b.destroyedID, _ = b.kit.Bind(b.body, toolkit.EventDestroyed, b.handleDestroyed)
	b.active = true
	if b.body.Mapped() {
		b.dispatchShown()
	}
	return true
}

// Deactivate unsubscribes from all three notifications without firing
// OnDestroy. It is the early exit for tearing lifecycle tracking down when
// the widget itself lives on. Returns false when the widget no longer
// exists.
func (b *Binding) Deactivate() bool {
	if b.body == nil || !b.body.Exists() {
		return false
	}
	b.unbind()
	b.active = false
	return true
}

func (b *Binding) unbind() {
	b.kit.Unbind(b.body, toolkit.EventShown, b.shownID)
	b.kit.Unbind(b.body, toolkit.EventHidden, b.hiddenID)
	b.kit.Unbind(b.body, toolkit.EventDestroyed, b.destroyedID)
	b.shownID = 0
	b.hiddenID = 0
	b.destroyedID = 0
}

// handleShown dispatches a shown notification. Structural events bubble up
// from descendants, so anything not originating at the bound widget is
// dropped.
func (b *Binding) handleShown(ev toolkit.Event) {
	if !b.active || ev.Source != b.body.ID() {
		return
	}
	b.dispatchShown()
}

func (b *Binding) dispatchShown() {
	if b.previouslyMapped {
		b.sink.OnRemap()
		return
	}
	b.sink.OnMap()
	b.previouslyMapped = true
}

func (b *Binding) handleHidden(ev toolkit.Event) {
	if !b.active || ev.Source != b.body.ID() {
		return
	}
	// previouslyMapped stays set: the next shown is a remap.
	b.sink.OnUnmap()
}

// handleDestroyed runs the terminal transition: unbind, notify, and best
// effort focus recovery. A destroyed binding cannot be reactivated since the
// widget no longer exists.
func (b *Binding) handleDestroyed(ev toolkit.Event) {
	if !b.active || ev.Source != b.body.ID() {
		return
	}
	b.unbind()
	b.sink.OnDestroy()
	b.previouslyMapped = false
	b.active = false
	if err := b.restoreFocus(); err != nil {
		log.Debug().Err(err).Msg("skipped focus recovery after widget destroy")
	}
}

// restoreFocus re-targets input focus after the bound widget was destroyed.
// When the master's subtree lost focus entirely, focus is forced onto the
// enclosing top-level window's last-focused descendant. This is best effort:
// the caller discards the error, since a missing descendant or a dying
// ancestor is an ordinary race during window teardown.
func (b *Binding) restoreFocus() error {
	if b.master == nil || !b.master.Exists() {
		return nil
	}
	if _, ok := b.kit.FocusedWithin(b.master); ok {
		return nil
	}
	top := b.kit.Toplevel(b.master)
	if top == nil {
		return errors.New("no enclosing toplevel")
	}
	last, ok := b.kit.LastFocused(top)
	if !ok {
		return errors.New("no last-focused widget to restore")
	}
	if err := b.kit.ForceFocus(last); err != nil {
		return fmt.Errorf("failed to force focus: %w", err)
	}
	return nil
}
