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

// Package viewable provides a base abstraction for views: components that
// construct their root widget lazily, exactly once, and receive lifecycle
// callbacks without wiring the adapter by hand.
//
// A view is defined by implementing Body, whose BuildBody returns the root
// widget. Optional hook interfaces (MapHook, RemapHook, UnmapHook,
// DestroyHook) are discovered by type assertion, so an implementation only
// declares the hooks it cares about. Map and destroy are the stable minimal
// contract; remap and unmap are an optional extension.
//
// The lifecycle of a view:
//  1. New wraps the Body implementation.
//  2. Build invokes BuildBody once; later calls return the same widget.
//  3. The map hook fires once the widget appears on screen.
//  4. The destroy hook fires when the widget is torn down. Terminal.
package viewable

import (
	"context"
	"fmt"

	"github.com/sprigui/viewable/pkg/lifecycle"
	"github.com/sprigui/viewable/pkg/toolkit"
)

// State is the coarse progression of a view. Remap and unmap cycles are
// hook-only and never move the state.
type State int

const (
	// StateNew means Build has not produced a body yet.
	StateNew State = iota
	// StateBuilt means the body exists but has not appeared on screen.
	StateBuilt
	// StateMapped means the body has been visible at least once.
	StateMapped
	// StateDestroyed is terminal; a destroyed view never rebuilds.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateBuilt:
		return "built"
	case StateMapped:
		return "mapped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Body is the one method a view implementation must provide. BuildBody
// constructs the view's root widget under master and returns it; returning
// nil makes Build fail with a MissingBodyError.
type Body interface {
	BuildBody(master toolkit.Widget) toolkit.Widget
}

// BuildFunc adapts a plain function to Body.
type BuildFunc func(master toolkit.Widget) toolkit.Widget

// BuildBody implements Body.
func (f BuildFunc) BuildBody(master toolkit.Widget) toolkit.Widget {
	return f(master)
}

// MapHook is implemented by view bodies that want the first-appearance
// callback. Without it, a view whose body is a top-level window is centered
// over its screen on first map.
type MapHook interface {
	OnViewMap()
}

// RemapHook receives every appearance after the first.
type RemapHook interface {
	OnViewRemap()
}

// UnmapHook receives hide notifications.
type UnmapHook interface {
	OnViewUnmap()
}

// DestroyHook receives the terminal destroy notification.
type DestroyHook interface {
	OnViewDestroy()
}

// View drives one Body through the build/map/destroy lifecycle.
type View struct {
	kit     toolkit.Toolkit
	impl    Body
	body    toolkit.Widget
	master  toolkit.Widget
	binding *lifecycle.Binding
	state   State
}

// New wraps impl into a view bound to the given toolkit.
func New(kit toolkit.Toolkit, impl Body) *View {
	return &View{
		kit:  kit,
		impl: impl,
	}
}

// State returns the view's coarse lifecycle state.
func (v *View) State() State {
	return v.state
}

// Body returns the built root widget, or nil before Build.
func (v *View) Body() toolkit.Widget {
	return v.body
}

// Master returns the parent of the built body, or nil.
func (v *View) Master() toolkit.Widget {
	return v.master
}

// Build constructs the view's body under master. The first successful call
// invokes BuildBody, wires the lifecycle binding and moves the view to
// StateBuilt; every later call returns the already built widget without
// rebuilding or re-raising. If BuildBody returns nil the call fails with a
// MissingBodyError and the view stays in StateNew, so a corrected
// implementation may build again.
//
// If the body is already visible when the binding attaches, the map hook
// fires synchronously before Build returns.
func (v *View) Build(master toolkit.Widget) (toolkit.Widget, error) {
	if v.state != StateNew {
		return v.body, nil
	}
	body := v.impl.BuildBody(master)
	if body == nil {
		return nil, &MissingBodyError{View: fmt.Sprintf("%T", v.impl)}
	}
	v.body = body
	v.master = body.Parent()
	v.state = StateBuilt
	// Binding against a body that died during BuildBody is a benign race;
	// the view simply never receives callbacks.
	v.binding, _ = lifecycle.Attach(v.kit, body, &viewSink{view: v})
	return body, nil
}

// BuildAttach builds the view and attaches its body to the parent with the
// given layout strategy, returning the body.
func (v *View) BuildAttach(master toolkit.Widget, layout toolkit.Layout, opts toolkit.AttachOptions) (toolkit.Widget, error) {
	body, err := v.Build(master)
	if err != nil {
		return nil, err
	}
	if err := v.kit.Attach(body, layout, opts); err != nil {
		return nil, fmt.Errorf("failed to attach view body: %w", err)
	}
	return body, nil
}

// BuildWait builds the view and blocks until its body is destroyed or ctx
// ends. The body should be a top-level window; waiting on a child widget is
// toolkit-dependent and not part of the contract.
func (v *View) BuildWait(ctx context.Context, master toolkit.Widget) (toolkit.Widget, error) {
	body, err := v.Build(master)
	if err != nil {
		return nil, err
	}
	if !body.Exists() {
		return body, nil
	}
	if err := v.kit.Wait(ctx, body); err != nil {
		return body, fmt.Errorf("failed to wait for view body: %w", err)
	}
	return body, nil
}

// Destroy tears down the view's body, which in turn fires the destroy hook
// through the lifecycle binding. A view without a body, or with an already
// destroyed one, is left alone.
func (v *View) Destroy() {
	if v.body == nil || !v.body.Exists() {
		return
	}
	v.kit.Destroy(v.body)
}

// viewSink routes adapter callbacks into the view: state transitions first,
// then the implementation's optional hooks.
type viewSink struct {
	view *View
}

func (s *viewSink) OnMap() {
	v := s.view
	if v.state == StateBuilt {
		v.state = StateMapped
	}
	if h, ok := v.impl.(MapHook); ok {
		h.OnViewMap()
		return
	}
	// Default first-map behavior: center top-level windows. Remaps skip
	// this, so it is a one-time adjustment.
	if v.body != nil && v.body.Toplevel() {
		v.kit.Center(v.body)
	}
}

func (s *viewSink) OnRemap() {
	if h, ok := s.view.impl.(RemapHook); ok {
		h.OnViewRemap()
	}
}

func (s *viewSink) OnUnmap() {
	if h, ok := s.view.impl.(UnmapHook); ok {
		h.OnViewUnmap()
	}
}

func (s *viewSink) OnDestroy() {
	v := s.view
	v.state = StateDestroyed
	if h, ok := v.impl.(DestroyHook); ok {
		h.OnViewDestroy()
	}
}
