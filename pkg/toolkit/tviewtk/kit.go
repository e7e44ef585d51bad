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

// Package tviewtk binds the toolkit contract to tview. Top-level windows are
// hosted as pages on a root tview.Pages; child widgets wrap arbitrary
// primitives inside Flex or Grid containers.
//
// The kit tracks the widget tree and visibility itself, since tview has no
// structural notifications of its own, and synthesizes the shown, hidden and
// destroyed events from the operations that change that structure. All kit
// methods must run on the goroutine driving the tview application; Wait is
// the exception and may block any other goroutine.
package tviewtk

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/sprigui/viewable/pkg/toolkit"
)

// Widget wraps one tview primitive as a toolkit.Widget.
type Widget struct {
	kit       *Kit
	id        toolkit.WidgetID
	prim      tview.Primitive
	parent    *Widget
	children  []*Widget
	done      chan struct{}
	attach    *attachSpec
	pageName  string
	toplevel  bool
	floating  bool
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

// Primitive returns the wrapped tview primitive.
func (w *Widget) Primitive() tview.Primitive { return w.prim }

type handlerKey struct {
	widget toolkit.WidgetID
	event  toolkit.EventType
}

// Kit is the tview toolkit binding.
type Kit struct {
	app         *tview.Application
	pages       *tview.Pages
	handlers    map[handlerKey]map[toolkit.HandlerID]toolkit.Handler
	lastFocused map[toolkit.WidgetID]*Widget
	focused     *Widget
	nextHandler toolkit.HandlerID
}

var _ toolkit.Toolkit = (*Kit)(nil)

// New creates a kit and installs its page host as the application root.
func New(app *tview.Application) *Kit {
	pages := tview.NewPages()
	app.SetRoot(pages, true)
	return &Kit{
		app:         app,
		pages:       pages,
		handlers:    make(map[handlerKey]map[toolkit.HandlerID]toolkit.Handler),
		lastFocused: make(map[toolkit.WidgetID]*Widget),
	}
}

// Application returns the driven tview application.
func (k *Kit) Application() *tview.Application { return k.app }

// Pages returns the root page host.
func (k *Kit) Pages() *tview.Pages { return k.pages }

func (k *Kit) newWidget(prim tview.Primitive, parent *Widget, toplevel bool) *Widget {
	w := &Widget{
		kit:      k,
		id:       toolkit.NewWidgetID(),
		prim:     prim,
		parent:   parent,
		done:     make(chan struct{}),
		toplevel: toplevel,
	}
	if parent != nil {
		parent.children = append(parent.children, w)
	}
	return w
}

// NewWindow creates a top-level window backed by a bordered Flex page. New
// windows are shown immediately, matching how toplevels surface in desktop
// toolkits; a lifecycle binding attached afterwards therefore sees them as
// already mapped.
func (k *Kit) NewWindow(title string) *Widget {
	flex := tview.NewFlex().SetDirection(tview.FlexRow)
	flex.SetBorder(true)
	flex.SetTitle(" " + title + " ")
	w := k.newWidget(flex, nil, true)
	w.pageName = string(w.id)
	k.pages.AddPage(w.pageName, flex, true, true)
	w.mapped = true
	k.emit(w, toolkit.EventShown)
	return w
}

// NewFrame creates a Flex container under parent. It stays unmapped until
// attached or shown.
func (k *Kit) NewFrame(parent *Widget) *Widget {
	return k.newWidget(tview.NewFlex().SetDirection(tview.FlexRow), parent, false)
}

// NewGridFrame creates a Grid container under parent, for LayoutGrid
// children.
func (k *Kit) NewGridFrame(parent *Widget) *Widget {
	return k.newWidget(tview.NewGrid(), parent, false)
}

// Adopt wraps an arbitrary tview primitive as a child widget of parent, so
// buttons, text views and other leaf primitives participate in the widget
// tree.
func (k *Kit) Adopt(parent *Widget, prim tview.Primitive) *Widget {
	return k.newWidget(prim, parent, false)
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

// emit bubbles ev from the source widget up its ancestor chain.
func (k *Kit) emit(src *Widget, t toolkit.EventType) {
	ev := toolkit.Event{Source: src.id, Type: t}
	for node := src; node != nil; node = node.parent {
		key := handlerKey{widget: node.id, event: t}
		fns := make([]toolkit.Handler, 0, len(k.handlers[key]))
		for _, fn := range k.handlers[key] {
			fns = append(fns, fn)
		}
		for _, fn := range fns {
			fn(ev)
		}
	}
}

// Show makes a hidden widget visible again and emits its shown event.
// Toplevels and placed widgets re-show their page; an attached child is
// re-inserted into its container with the geometry it was attached with,
// which puts it after its current siblings the same way re-packing does in
// desktop toolkits. A child that was never attached only flips its tracked
// visibility.
func (k *Kit) Show(w *Widget) {
	if w.destroyed || w.mapped {
		return
	}
	switch {
	case w.toplevel:
		k.pages.ShowPage(w.pageName)
	case w.floating:
		k.pages.ShowPage(string(w.id))
	case w.attach != nil:
		if err := k.insert(w, w.attach.layout, w.attach.opts); err != nil {
			log.Debug().
				Err(err).
				Str("widget", string(w.id)).
				Msg("failed to reinsert widget into its container")
		}
	}
	w.mapped = true
	k.emit(w, toolkit.EventShown)
}

// Hide hides a visible widget without destroying it. Toplevels and placed
// widgets hide their page; an attached child is removed from its Flex or
// Grid container so it stops rendering until shown again.
func (k *Kit) Hide(w *Widget) {
	if w.destroyed || !w.mapped {
		return
	}
	switch {
	case w.toplevel:
		k.pages.HidePage(w.pageName)
	case w.floating:
		k.pages.HidePage(string(w.id))
	default:
		k.removeFromParent(w)
	}
	w.mapped = false
	k.emit(w, toolkit.EventHidden)
}

// Destroy implements toolkit.Toolkit. Children go first, depth-first, each
// emitting its own destroyed event; the widget's primitive is then removed
// from its container or page host.
func (k *Kit) Destroy(w toolkit.Widget) {
	tw, ok := w.(*Widget)
	if !ok || tw.destroyed {
		return
	}
	k.destroy(tw)
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
	k.detach(w)
	k.emit(w, toolkit.EventDestroyed)
	close(w.done)
}

// detach removes the widget's primitive from whatever hosts it.
func (k *Kit) detach(w *Widget) {
	switch {
	case w.toplevel:
		k.pages.RemovePage(w.pageName)
	case w.floating:
		k.pages.RemovePage(string(w.id))
	default:
		k.removeFromParent(w)
	}
}

// removeFromParent takes the widget's primitive out of its parent container.
// Flex and Grid ignore removals of items they do not hold, so this is safe
// for widgets that are already hidden.
func (k *Kit) removeFromParent(w *Widget) {
	if w.parent == nil {
		return
	}
	switch container := w.parent.prim.(type) {
	case *tview.Flex:
		container.RemoveItem(w.prim)
	case *tview.Grid:
		container.RemoveItem(w.prim)
	default:
		log.Debug().
			Str("widget", string(w.id)).
			Msg("parent container does not support item removal")
	}
}
