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

// Package toolkittest provides an in-memory toolkit.Toolkit for tests.
// Widgets are plain records and the structural notifications are scripted
// explicitly through ShowWidget, HideWidget and Destroy, so lifecycle
// sequences can be driven deterministically without a terminal.
package toolkittest

import (
	"context"
	"errors"
	"fmt"

	"github.com/sprigui/viewable/pkg/toolkit"
)

// Widget is a fake toolkit widget.
type Widget struct {
	kit       *Kit
	id        toolkit.WidgetID
	name      string
	parent    *Widget
	children  []*Widget
	done      chan struct{}
	toplevel  bool
	mapped    bool
	destroyed bool
}

// ID implements toolkit.Widget.
func (w *Widget) ID() toolkit.WidgetID { return w.id }

// Parent implements toolkit.Widget.
func (w *Widget) Parent() toolkit.Widget {
	if w.parent == nil {
		return nil
	}
	return w.parent
}

// Exists implements toolkit.Widget.
func (w *Widget) Exists() bool { return !w.destroyed }

// Mapped implements toolkit.Widget.
func (w *Widget) Mapped() bool { return w.mapped && !w.destroyed }

// Toplevel implements toolkit.Widget.
func (w *Widget) Toplevel() bool { return w.toplevel }

// Name returns the label given at creation, for test failure messages.
func (w *Widget) Name() string { return w.name }

// AttachRecord captures one Attach call.
type AttachRecord struct {
	Layout toolkit.Layout
	Opts   toolkit.AttachOptions
}

type handlerKey struct {
	widget toolkit.WidgetID
	event  toolkit.EventType
}

// Kit is a scriptable in-memory toolkit.
type Kit struct {
	handlers    map[handlerKey]map[toolkit.HandlerID]toolkit.Handler
	lastFocused map[toolkit.WidgetID]*Widget
	Attached    map[toolkit.WidgetID]AttachRecord
	Centered    map[toolkit.WidgetID]int
	focused     *Widget
	nextHandler toolkit.HandlerID

	// ForceFocusErr, when set, is returned by every ForceFocus call.
	ForceFocusErr error
}

var _ toolkit.Toolkit = (*Kit)(nil)

// NewKit returns an empty fake toolkit.
func NewKit() *Kit {
	return &Kit{
		handlers:    make(map[handlerKey]map[toolkit.HandlerID]toolkit.Handler),
		lastFocused: make(map[toolkit.WidgetID]*Widget),
		Attached:    make(map[toolkit.WidgetID]AttachRecord),
		Centered:    make(map[toolkit.WidgetID]int),
	}
}

func (k *Kit) newWidget(name string, parent *Widget, toplevel, mapped bool) *Widget {
	w := &Widget{
		kit:      k,
		id:       toolkit.NewWidgetID(),
		name:     name,
		parent:   parent,
		done:     make(chan struct{}),
		toplevel: toplevel,
		mapped:   mapped,
	}
	if parent != nil {
		parent.children = append(parent.children, w)
	}
	return w
}

// NewWindow creates a top-level window that is already visible, which is how
// real toolkits surface new windows.
func (k *Kit) NewWindow(name string) *Widget {
	return k.newWidget(name, nil, true, true)
}

// NewHiddenWindow creates a top-level window that starts out unmapped.
func (k *Kit) NewHiddenWindow(name string) *Widget {
	return k.newWidget(name, nil, true, false)
}

// NewFrame creates a child container, unmapped until shown or attached.
func (k *Kit) NewFrame(name string, parent *Widget) *Widget {
	return k.newWidget(name, parent, false, false)
}

// Bind implements toolkit.Binder.
func (k *Kit) Bind(w toolkit.Widget, t toolkit.EventType, fn toolkit.Handler) (toolkit.HandlerID, bool) {
	if w == nil || !w.Exists() {
		return 0, false
	}
	k.nextHandler++
	key := handlerKey{widget: w.ID(), event: t}
	if k.handlers[key] == nil {
		k.handlers[key] = make(map[toolkit.HandlerID]toolkit.Handler)
	}
	k.handlers[key][k.nextHandler] = fn
	return k.nextHandler, true
}

// Unbind implements toolkit.Binder.
func (k *Kit) Unbind(w toolkit.Widget, t toolkit.EventType, id toolkit.HandlerID) bool {
	if w == nil {
		return false
	}
	key := handlerKey{widget: w.ID(), event: t}
	if _, ok := k.handlers[key][id]; !ok {
		return false
	}
	delete(k.handlers[key], id)
	return true
}

// BoundHandlers counts the handlers currently bound for one widget across
// all event types, so tests can assert that deactivation unbinds cleanly.
func (k *Kit) BoundHandlers(w toolkit.Widget) int {
	n := 0
	for _, t := range []toolkit.EventType{toolkit.EventShown, toolkit.EventHidden, toolkit.EventDestroyed} {
		n += len(k.handlers[handlerKey{widget: w.ID(), event: t}])
	}
	return n
}

// emit delivers ev to handlers bound on the source widget and on each of its
// ancestors, mirroring how structural events bubble in real toolkits.
func (k *Kit) emit(src *Widget, t toolkit.EventType) {
	ev := toolkit.Event{Source: src.id, Type: t}
	for node := src; node != nil; node = node.parent {
		key := handlerKey{widget: node.id, event: t}
		// Handlers may unbind themselves mid-dispatch; snapshot first.
		fns := make([]toolkit.Handler, 0, len(k.handlers[key]))
		for _, fn := range k.handlers[key] {
			fns = append(fns, fn)
		}
		for _, fn := range fns {
			fn(ev)
		}
	}
}

// ShowWidget maps the widget and emits its shown notification. Showing a
// widget that is already visible or destroyed does nothing.
func (k *Kit) ShowWidget(w *Widget) {
	if w.destroyed || w.mapped {
		return
	}
	w.mapped = true
	k.emit(w, toolkit.EventShown)
}

// HideWidget unmaps the widget and emits its hidden notification.
func (k *Kit) HideWidget(w *Widget) {
	if w.destroyed || !w.mapped {
		return
	}
	w.mapped = false
	k.emit(w, toolkit.EventHidden)
}

// Destroy implements toolkit.Toolkit. Children are destroyed depth-first
// before the widget itself, each emitting its own destroyed notification.
func (k *Kit) Destroy(w toolkit.Widget) {
	fw, ok := w.(*Widget)
	if !ok || fw.destroyed {
		return
	}
	k.destroy(fw)
}

func (k *Kit) destroy(w *Widget) {
	children := make([]*Widget, len(w.children))
	copy(children, w.children)
	for _, child := range children {
		if !child.destroyed {
			k.destroy(child)
		}
	}
	w.destroyed = true
	w.mapped = false
	if k.focused == w {
		k.focused = nil
	}
	k.emit(w, toolkit.EventDestroyed)
	close(w.done)
}

// Attach implements toolkit.Layouter. The fake records the call and maps the
// widget, since attaching to a geometry manager is what makes a real widget
// appear.
func (k *Kit) Attach(w toolkit.Widget, layout toolkit.Layout, opts toolkit.AttachOptions) error {
	fw, ok := w.(*Widget)
	if !ok || fw.destroyed {
		return errors.New("widget no longer exists")
	}
	k.Attached[fw.id] = AttachRecord{Layout: layout, Opts: opts}
	k.ShowWidget(fw)
	if opts.Focus {
		if err := k.ForceFocus(fw); err != nil {
			return fmt.Errorf("failed to focus attached widget: %w", err)
		}
	}
	return nil
}

// Wait implements toolkit.Waiter. It only touches the widget's done
// channel, created at construction and closed by destroy, so it is safe to
// block a goroutine other than the one scripting the kit.
func (k *Kit) Wait(ctx context.Context, w toolkit.Widget) error {
	fw, ok := w.(*Widget)
	if !ok {
		return nil
	}
	select {
	case <-fw.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for widget destroy: %w", ctx.Err())
	}
}

// ForceFocus implements toolkit.Focuser.
func (k *Kit) ForceFocus(w toolkit.Widget) error {
	if k.ForceFocusErr != nil {
		return k.ForceFocusErr
	}
	fw, ok := w.(*Widget)
	if !ok || fw.destroyed {
		return errors.New("cannot focus a destroyed widget")
	}
	k.focused = fw
	if top := k.toplevelOf(fw); top != nil {
		k.lastFocused[top.id] = fw
	}
	return nil
}

// FocusedWithin implements toolkit.Focuser.
func (k *Kit) FocusedWithin(w toolkit.Widget) (toolkit.Widget, bool) {
	if k.focused == nil || k.focused.destroyed {
		return nil, false
	}
	for node := k.focused; node != nil; node = node.parent {
		if node.id == w.ID() {
			return k.focused, true
		}
	}
	return nil, false
}

// LastFocused implements toolkit.Focuser.
func (k *Kit) LastFocused(top toolkit.Widget) (toolkit.Widget, bool) {
	last, ok := k.lastFocused[top.ID()]
	if !ok || last.destroyed {
		return nil, false
	}
	return last, true
}

// Toplevel implements toolkit.Focuser.
func (k *Kit) Toplevel(w toolkit.Widget) toolkit.Widget {
	fw, ok := w.(*Widget)
	if !ok {
		return nil
	}
	if top := k.toplevelOf(fw); top != nil {
		return top
	}
	return nil
}

func (k *Kit) toplevelOf(w *Widget) *Widget {
	var root *Widget
	for node := w; node != nil; node = node.parent {
		if node.toplevel {
			return node
		}
		root = node
	}
	return root
}

// Center implements toolkit.Toolkit by counting the calls per widget.
func (k *Kit) Center(w toolkit.Widget) {
	k.Centered[w.ID()]++
}

// SetLastFocused scripts the last-focused record of a top-level window, so
// focus-recovery paths can be exercised without replaying a focus history.
func (k *Kit) SetLastFocused(top, w toolkit.Widget) {
	fw, ok := w.(*Widget)
	if !ok {
		return
	}
	k.lastFocused[top.ID()] = fw
}

// Focused returns the currently focused widget, or nil.
func (k *Kit) Focused() toolkit.Widget {
	if k.focused == nil {
		return nil
	}
	return k.focused
}
