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

package toolkit

// Layout selects a geometry-management strategy for attaching a widget to
// its parent container.
type Layout int

const (
	// LayoutPack stacks the widget into its parent's flow, sized by
	// proportion or a fixed span.
	LayoutPack Layout = iota
	// LayoutGrid places the widget into a row/column cell of its parent.
	LayoutGrid
	// LayoutPlace positions the widget at absolute coordinates.
	LayoutPlace
)

func (l Layout) String() string {
	switch l {
	case LayoutPack:
		return "pack"
	case LayoutGrid:
		return "grid"
	case LayoutPlace:
		return "place"
	default:
		return "unknown"
	}
}

// AttachOptions carries the per-strategy attachment parameters. Zero values
// are sensible defaults: pack fills proportionally, grid occupies a single
// cell at the origin.
type AttachOptions struct {
	// Pack: FixedSize pins the widget to an absolute number of cells;
	// when zero, Proportion distributes leftover space (0 means 1).
	Proportion int
	FixedSize  int

	// Grid cell and spans (spans of 0 mean 1).
	Row     int
	Column  int
	RowSpan int
	ColSpan int

	// Place: absolute geometry.
	X      int
	Y      int
	Width  int
	Height int

	// Focus moves input focus to the widget once attached.
	Focus bool
}
