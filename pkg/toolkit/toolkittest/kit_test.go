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

package toolkittest

import (
	"context"
	"testing"
	"time"

	"github.com/sprigui/viewable/pkg/toolkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsBubbleWithSourceIdentity(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")
	frame := kit.NewFrame("frame", win)
	inner := kit.NewFrame("inner", frame)

	var sources []toolkit.WidgetID
	_, ok := kit.Bind(win, toolkit.EventShown, func(ev toolkit.Event) {
		sources = append(sources, ev.Source)
	})
	require.True(t, ok)

	kit.ShowWidget(inner)
	assert.Equal(t, []toolkit.WidgetID{inner.ID()}, sources,
		"handlers on ancestors see descendant events tagged with their origin")
}

func TestAttachRecordsAndMaps(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")
	frame := kit.NewFrame("frame", win)

	err := kit.Attach(frame, toolkit.LayoutGrid, toolkit.AttachOptions{Row: 2, Column: 1})
	require.NoError(t, err)
	assert.True(t, frame.Mapped())

	rec := kit.Attached[frame.ID()]
	assert.Equal(t, toolkit.LayoutGrid, rec.Layout)
	assert.Equal(t, 2, rec.Opts.Row)
}

func TestDestroyReleasesWaiters(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")
	kit.Destroy(win)

	require.NoError(t, kit.Wait(context.Background(), win))
	assert.False(t, win.Exists())
}

func TestWaitConcurrentWithDestroy(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")

	waited := make(chan error, 1)
	go func() {
		waited <- kit.Wait(context.Background(), win)
	}()

	kit.Destroy(win)

	select {
	case err := <-waited:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not return after destroy")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := kit.Wait(ctx, win)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBindToDestroyedWidgetFails(t *testing.T) {
	t.Parallel()

	kit := NewKit()
	win := kit.NewWindow("root")
	kit.Destroy(win)

	_, ok := kit.Bind(win, toolkit.EventShown, func(toolkit.Event) {})
	assert.False(t, ok)
}
