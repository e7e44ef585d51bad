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

package viewable

import "github.com/sprigui/viewable/pkg/toolkit"

// CustomConfig assembles a view from injected callables, for one-off views
// where defining a Body type is ceremony. Either Body or Build supplies the
// root widget; when both are set, Body wins. Nil hooks are no-ops, which
// also means a custom view opts out of the default window centering.
type CustomConfig struct {
	// Body is a pre-built root widget.
	Body toolkit.Widget
	// Build constructs the root widget at Build time.
	Build BuildFunc

	OnMap     func()
	OnRemap   func()
	OnUnmap   func()
	OnDestroy func()
}

// Custom returns a view assembled from cfg.
func Custom(kit toolkit.Toolkit, cfg CustomConfig) *View {
	return New(kit, &customBody{cfg: cfg})
}

type customBody struct {
	cfg CustomConfig
}

func (c *customBody) BuildBody(master toolkit.Widget) toolkit.Widget {
	if c.cfg.Body != nil {
		return c.cfg.Body
	}
	if c.cfg.Build != nil {
		return c.cfg.Build(master)
	}
	return nil
}

func (c *customBody) OnViewMap() {
	if c.cfg.OnMap != nil {
		c.cfg.OnMap()
	}
}

func (c *customBody) OnViewRemap() {
	if c.cfg.OnRemap != nil {
		c.cfg.OnRemap()
	}
}

func (c *customBody) OnViewUnmap() {
	if c.cfg.OnUnmap != nil {
		c.cfg.OnUnmap()
	}
}

func (c *customBody) OnViewDestroy() {
	if c.cfg.OnDestroy != nil {
		c.cfg.OnDestroy()
	}
}
