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
	"errors"

	"github.com/sprigui/viewable/pkg/toolkit"
)

// ForceFocus implements toolkit.Focuser. Besides driving the application's
// focus, the kit records the target as the last-focused widget of its
// enclosing window, which is what post-destroy focus recovery falls back to.
func (k *Kit) ForceFocus(w toolkit.Widget) error {
	tw, ok := w.(*Widget)
	if !ok || tw.destroyed {
		return errors.New("cannot focus a destroyed widget")
	}
	k.focused = tw
	if top := k.toplevelOf(tw); top != nil {
		k.lastFocused[top.id] = tw
	}
	k.app.SetFocus(tw.prim)
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
	tw, ok := w.(*Widget)
	if !ok {
		return nil
	}
	if top := k.toplevelOf(tw); top != nil {
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

// Focused returns the widget the kit considers focused, or nil.
func (k *Kit) Focused() toolkit.Widget {
	if k.focused == nil {
		return nil
	}
	return k.focused
}
