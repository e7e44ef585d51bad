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

package lifecycle

import (
	"errors"
	"testing"

	"github.com/sprigui/viewable/pkg/toolkit/toolkittest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink counts callbacks and keeps their order.
type recordingSink struct {
	events   []string
	maps     int
	remaps   int
	unmaps   int
	destroys int
}

func (s *recordingSink) OnMap()     { s.maps++; s.events = append(s.events, "map") }
func (s *recordingSink) OnRemap()   { s.remaps++; s.events = append(s.events, "remap") }
func (s *recordingSink) OnUnmap()   { s.unmaps++; s.events = append(s.events, "unmap") }
func (s *recordingSink) OnDestroy() { s.destroys++; s.events = append(s.events, "destroy") }

func TestAttach_FirstShownFiresMap(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}

	b, ok := Attach(kit, body, sink)
	require.True(t, ok)
	assert.True(t, b.Active())
	assert.Zero(t, sink.maps, "unmapped body must not map at bind time")

	kit.ShowWidget(body)
	assert.Equal(t, 1, sink.maps)
	assert.Zero(t, sink.remaps)
}

func TestAttach_AlreadyMappedBodyMapsSynchronously(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	sink := &recordingSink{}

	// Windows are visible from creation; no shown notification will ever
	// be delivered for them, so binding must map immediately.
	_, ok := Attach(kit, win, sink)
	require.True(t, ok)
	assert.Equal(t, 1, sink.maps)

	kit.HideWidget(win)
	kit.ShowWidget(win)
	assert.Equal(t, 1, sink.maps)
	assert.Equal(t, 1, sink.remaps)
}

func TestAttach_DestroyedWidgetIsNoOp(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	kit.Destroy(body)
	sink := &recordingSink{}

	b, ok := Attach(kit, body, sink)
	assert.False(t, ok)
	assert.False(t, b.Active())
	assert.Zero(t, kit.BoundHandlers(body))
}

func TestBinding_HideThenShowFiresUnmapThenRemap(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	kit.ShowWidget(body)
	kit.HideWidget(body)
	kit.ShowWidget(body)

	assert.Equal(t, []string{"map", "unmap", "remap"}, sink.events)
}

func TestBinding_DescendantEventsAreFiltered(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	child := kit.NewFrame("child", body)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	// Child events bubble to handlers bound on body but must not fire
	// its callbacks.
	kit.ShowWidget(child)
	kit.HideWidget(child)
	kit.Destroy(child)

	assert.Empty(t, sink.events)
}

func TestBinding_DestroyIsTerminal(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	b, ok := Attach(kit, body, sink)
	require.True(t, ok)

	kit.ShowWidget(body)
	kit.Destroy(body)
	require.Equal(t, 1, sink.destroys)
	assert.False(t, b.Active())
	assert.Zero(t, kit.BoundHandlers(body))

	// A repeated destroy must not re-invoke the callback, and the
	// binding cannot come back.
	kit.Destroy(body)
	assert.Equal(t, 1, sink.destroys)
	assert.False(t, b.Activate())
}

func TestBinding_DeactivateStopsDispatchWithoutDestroy(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	b, ok := Attach(kit, body, sink)
	require.True(t, ok)

	require.True(t, b.Deactivate())
	assert.Zero(t, kit.BoundHandlers(body))

	kit.ShowWidget(body)
	kit.Destroy(body)
	assert.Empty(t, sink.events, "deactivated binding must not dispatch")
}

func TestBinding_ReactivateAfterDeactivate(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	b, ok := Attach(kit, body, sink)
	require.True(t, ok)

	kit.ShowWidget(body)
	require.True(t, b.Deactivate())
	kit.HideWidget(body)

	// The previously-mapped flag survives deactivation: once the body
	// has been seen, a reactivated binding reports remaps only.
	require.True(t, b.Activate())
	kit.ShowWidget(body)
	assert.Equal(t, 1, sink.maps)
	assert.Equal(t, 1, sink.remaps)
	assert.Zero(t, sink.unmaps)
}

func TestBinding_ActivateTwiceBindsOnce(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	b, ok := Attach(kit, body, sink)
	require.True(t, ok)

	require.True(t, b.Activate())
	assert.Equal(t, 3, kit.BoundHandlers(body))

	kit.ShowWidget(body)
	assert.Equal(t, 1, sink.maps, "double activation must not double dispatch")
}

func TestBinding_EventOrdering(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	kit.ShowWidget(body)
	kit.HideWidget(body)
	kit.ShowWidget(body)
	kit.Destroy(body)

	assert.Equal(t, []string{"map", "unmap", "remap", "destroy"}, sink.events)
}

func TestBinding_DestroyRestoresFocus(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	inner := kit.NewFrame("inner", body)
	sibling := kit.NewFrame("sibling", win)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	require.NoError(t, kit.ForceFocus(inner))
	kit.SetLastFocused(win, sibling)

	kit.Destroy(body)
	require.Equal(t, 1, sink.destroys)
	assert.Same(t, sibling, kit.Focused(), "focus must fall back to the window's last-focused widget")
}

func TestBinding_DestroyWithoutFocusCandidateIsSilent(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	inner := kit.NewFrame("inner", body)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	// The only focus candidate dies with the body: recovery has nowhere
	// to go and must swallow the failure.
	require.NoError(t, kit.ForceFocus(inner))

	assert.NotPanics(t, func() { kit.Destroy(body) })
	assert.Equal(t, 1, sink.destroys)
	assert.Nil(t, kit.Focused())
}

func TestBinding_FocusRecoveryFailureDoesNotAbortDestroy(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	inner := kit.NewFrame("inner", body)
	sibling := kit.NewFrame("sibling", win)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	require.NoError(t, kit.ForceFocus(inner))
	kit.SetLastFocused(win, sibling)
	kit.ForceFocusErr = errors.New("focus rejected")

	assert.NotPanics(t, func() { kit.Destroy(body) })
	assert.Equal(t, 1, sink.destroys)
}

func TestBinding_FocusInsideMasterSkipsRecovery(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)
	sibling := kit.NewFrame("sibling", win)
	sink := &recordingSink{}
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	require.NoError(t, kit.ForceFocus(sibling))
	kit.Destroy(body)

	assert.Same(t, sibling, kit.Focused(), "focus already inside the master is left alone")
}

func TestCallbacks_NilFuncsAreNoOps(t *testing.T) {
	t.Parallel()

	kit := toolkittest.NewKit()
	win := kit.NewWindow("root")
	body := kit.NewFrame("body", win)

	mapped := 0
	sink := Callbacks{OnMap: func() { mapped++ }}.Sink()
	_, ok := Attach(kit, body, sink)
	require.True(t, ok)

	assert.NotPanics(t, func() {
		kit.ShowWidget(body)
		kit.HideWidget(body)
		kit.ShowWidget(body)
		kit.Destroy(body)
	})
	assert.Equal(t, 1, mapped)
}
