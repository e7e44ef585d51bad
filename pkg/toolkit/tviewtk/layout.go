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

package tviewtk

import (
	"context"
	"errors"
	"fmt"

	"github.com/rivo/tview"
	"github.com/sprigui/viewable/pkg/toolkit"
)

// attachSpec remembers how a widget was attached, so hiding and re-showing
// it can replay the same container insertion.
type attachSpec struct {
	layout toolkit.Layout
	opts   toolkit.AttachOptions
}

// Attach implements toolkit.Layouter. Pack adds the widget to a Flex parent,
// grid to a Grid parent, and place positions the widget at absolute
// coordinates floating over the page host. Attaching maps the widget and
// emits its shown event.
func (k *Kit) Attach(w toolkit.Widget, layout toolkit.Layout, opts toolkit.AttachOptions) error {
	tw, ok := w.(*Widget)
	if !ok || tw.destroyed {
		return errors.New("widget no longer exists")
	}
	if tw.toplevel {
		return errors.New("cannot attach a toplevel window")
	}

	if err := k.insert(tw, layout, opts); err != nil {
		return err
	}
	tw.attach = &attachSpec{layout: layout, opts: opts}
	tw.mapped = true
	k.emit(tw, toolkit.EventShown)
	if opts.Focus {
		if err := k.ForceFocus(tw); err != nil {
			return fmt.Errorf("failed to focus attached widget: %w", err)
		}
	}
	return nil
}

// insert adds the widget's primitive to the host dictated by layout.
func (k *Kit) insert(w *Widget, layout toolkit.Layout, opts toolkit.AttachOptions) error {
	switch layout {
	case toolkit.LayoutPack:
		if w.parent == nil {
			return errors.New("pack requires a parent container")
		}
		flex, ok := w.parent.prim.(*tview.Flex)
		if !ok {
			return fmt.Errorf("pack requires a Flex parent, got %T", w.parent.prim)
		}
		proportion := opts.Proportion
		if opts.FixedSize == 0 && proportion == 0 {
			proportion = 1
		}
		flex.AddItem(w.prim, opts.FixedSize, proportion, opts.Focus)
	case toolkit.LayoutGrid:
		if w.parent == nil {
			return errors.New("grid requires a parent container")
		}
		grid, ok := w.parent.prim.(*tview.Grid)
		if !ok {
			return fmt.Errorf("grid requires a Grid parent, got %T", w.parent.prim)
		}
		grid.AddItem(w.prim,
			opts.Row, opts.Column,
			max(opts.RowSpan, 1), max(opts.ColSpan, 1),
			0, 0, opts.Focus)
	case toolkit.LayoutPlace:
		w.prim.SetRect(opts.X, opts.Y, opts.Width, opts.Height)
		w.floating = true
		k.pages.AddPage(string(w.id), w.prim, false, true)
	default:
		return fmt.Errorf("unsupported layout %s", layout)
	}
	return nil
}

// Wait implements toolkit.Waiter. It blocks the calling goroutine until the
// widget's destroy event fires, so it must not be called from the goroutine
// running the tview event loop. It touches nothing but the widget's done
// channel, created at construction and closed by destroy, which makes it
// safe against a concurrent destroy on the UI goroutine; an already
// destroyed widget returns immediately.
func (k *Kit) Wait(ctx context.Context, w toolkit.Widget) error {
	tw, ok := w.(*Widget)
	if !ok {
		return nil
	}
	select {
	case <-tw.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for widget destroy: %w", ctx.Err())
	}
}

// Center implements toolkit.Toolkit. It centers a window's rect within the
// page host. Windows that have never been measured keep their rect.
func (k *Kit) Center(w toolkit.Widget) {
	tw, ok := w.(*Widget)
	if !ok || tw.destroyed || !tw.toplevel {
		return
	}
	px, py, pw, ph := k.pages.GetRect()
	_, _, ww, wh := tw.prim.GetRect()
	if pw == 0 || ph == 0 || ww == 0 || wh == 0 {
		return
	}
	tw.prim.SetRect(px+(pw-ww)/2, py+(ph-wh)/2, ww, wh)
}
