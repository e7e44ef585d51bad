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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWidgetID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[WidgetID]bool)
	for i := 0; i < 100; i++ {
		id := NewWidgetID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "widget IDs must not repeat")
		seen[id] = true
	}
}

func TestEventTypeAndLayoutNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shown", EventShown.String())
	assert.Equal(t, "hidden", EventHidden.String())
	assert.Equal(t, "destroyed", EventDestroyed.String())
	assert.Equal(t, "pack", LayoutPack.String())
	assert.Equal(t, "grid", LayoutGrid.String())
	assert.Equal(t, "place", LayoutPlace.String())
}
