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

// Package toolkit defines the contract between the lifecycle machinery and a
// host widget toolkit. The library never talks to a toolkit directly; it
// accepts these interfaces and leaves the concrete binding (tview, a test
// fake) to the caller.
package toolkit

import (
	"context"

	"github.com/google/uuid"
)

// WidgetID is an opaque handle identifying one widget within a toolkit
// binding. Structural notifications carry the ID of the widget they
// originated from, so handlers can match by identity instead of comparing
// toolkit objects.
type WidgetID string

// NewWidgetID returns a fresh unique widget handle.
func NewWidgetID() WidgetID {
	return WidgetID(uuid.NewString())
}

// EventType enumerates the structural notifications a toolkit delivers for a
// widget.
type EventType int

const (
	// EventShown fires when a widget becomes visible on screen.
	EventShown EventType = iota
	// EventHidden fires when a visible widget is hidden without being
	// destroyed.
	EventHidden
	// EventDestroyed fires when a widget is permanently torn down.
	EventDestroyed
)

func (t EventType) String() string {
	switch t {
	case EventShown:
		return "shown"
	case EventHidden:
		return "hidden"
	case EventDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Event is a single structural notification. Source identifies the widget
// the event originated from, which is not necessarily the widget a handler
// was bound to: structural events bubble up the ancestor chain, so a handler
// bound on a container also sees events for its descendants.
type Event struct {
	Source WidgetID
	Type   EventType
}

// Handler receives structural notifications for a widget and its
// descendants.
type Handler func(Event)

// HandlerID identifies one bound handler so it can be unbound later.
type HandlerID int64

// Widget is the structural view of one toolkit widget.
type Widget interface {
	// ID returns the widget's opaque handle.
	ID() WidgetID
	// Parent returns the containing widget, or nil for a root widget.
	Parent() Widget
	// Exists reports whether the widget is still alive in the toolkit.
	Exists() bool
	// Mapped reports whether the widget is currently visible on screen.
	Mapped() bool
	// Toplevel reports whether the widget is a top-level window rather
	// than a child container.
	Toplevel() bool
}

// Binder subscribes handlers to a widget's structural notifications.
type Binder interface {
	// Bind subscribes fn to notifications of type t delivered at w. It
	// returns false, without binding, when w no longer exists.
	Bind(w Widget, t EventType, fn Handler) (HandlerID, bool)
	// Unbind removes a previously bound handler. It reports whether the
	// handler was still bound.
	Unbind(w Widget, t EventType, id HandlerID) bool
}

// Focuser exposes the toolkit's focus-query and focus-set primitives.
type Focuser interface {
	// FocusedWithin returns the currently focused widget if it lies
	// inside w (w included).
	FocusedWithin(w Widget) (Widget, bool)
	// LastFocused returns the most recently focused descendant of the
	// top-level window top, if it still exists.
	LastFocused(top Widget) (Widget, bool)
	// ForceFocus moves input focus to w.
	ForceFocus(w Widget) error
	// Toplevel returns the top-level window enclosing w (w itself when w
	// is a window).
	Toplevel(w Widget) Widget
}

// Layouter applies a geometry-management strategy to a widget, making it
// visible inside its parent.
type Layouter interface {
	Attach(w Widget, layout Layout, opts AttachOptions) error
}

// Waiter blocks until a widget is destroyed.
type Waiter interface {
	// Wait returns once w's destroy notification has fired, or with
	// ctx's error if the context ends first. Waiting on an already
	// destroyed widget returns immediately.
	Wait(ctx context.Context, w Widget) error
}

// Toolkit is the full collaborator surface the view layer needs.
type Toolkit interface {
	Binder
	Focuser
	Layouter
	Waiter

	// Destroy permanently tears down w and all of its descendants.
	// Destroying an already destroyed widget is a no-op.
	Destroy(w Widget)
	// Center positions a top-level window centered over its screen.
	Center(w Widget)
}
