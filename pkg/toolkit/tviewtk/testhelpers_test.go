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
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sprigui/viewable/pkg/helpers/syncutil"
	"github.com/stretchr/testify/require"
)

// TestScreen wraps a SimulationScreen with assertion helpers.
type TestScreen struct {
	tcell.SimulationScreen
	t      *testing.T
	width  int
	height int
}

// NewTestScreen creates and initializes a simulation screen.
func NewTestScreen(t *testing.T, width, height int) *TestScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NotNil(t, sim, "failed to create simulation screen")

	err := sim.Init()
	require.NoError(t, err, "failed to initialize simulation screen")
	sim.SetSize(width, height)

	return &TestScreen{
		SimulationScreen: sim,
		t:                t,
		width:            width,
		height:           height,
	}
}

// ContainsText reports whether the rendered screen contains text anywhere.
func (s *TestScreen) ContainsText(text string) bool {
	cells, width, height := s.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx < len(cells) && len(cells[idx].Runes) > 0 {
				sb.WriteRune(cells[idx].Runes[0])
			}
		}
		sb.WriteByte('\n')
	}
	return strings.Contains(sb.String(), text)
}

// TestAppRunner runs a tview application against a simulation screen from a
// background goroutine, so kit operations can be driven synchronously from
// the test.
type TestAppRunner struct {
	app     *tview.Application
	screen  *TestScreen
	t       *testing.T
	stopMu  syncutil.Mutex
	stopped bool
}

// NewTestAppRunner creates a runner with a fresh application and screen.
func NewTestAppRunner(t *testing.T, width, height int) *TestAppRunner {
	t.Helper()

	screen := NewTestScreen(t, width, height)
	app := tview.NewApplication()
	app.SetScreen(screen.SimulationScreen)

	return &TestAppRunner{
		app:    app,
		screen: screen,
		t:      t,
	}
}

// Start runs the application with whatever root it already has. A run
// failure is reported on the test directly, since the goroutine outlives
// the call.
func (r *TestAppRunner) Start() {
	go func() {
		if err := r.app.Run(); err != nil {
			r.t.Errorf("application run failed: %v", err)
		}
		r.stopMu.Lock()
		r.stopped = true
		r.stopMu.Unlock()
	}()
	// Brief pause to let the app initialize.
	time.Sleep(20 * time.Millisecond)
}

// Stop stops the application. tview's Stop finalizes the screen itself, so
// no extra cleanup happens here.
func (r *TestAppRunner) Stop() {
	r.stopMu.Lock()
	alreadyStopped := r.stopped
	if !alreadyStopped {
		r.stopped = true
	}
	r.stopMu.Unlock()

	if !alreadyStopped {
		r.app.Stop()
		time.Sleep(20 * time.Millisecond)
	}
}

// Screen returns the simulation screen.
func (r *TestAppRunner) Screen() *TestScreen {
	return r.screen
}

// App returns the tview application.
func (r *TestAppRunner) App() *tview.Application {
	return r.app
}

// QueueUpdateDraw queues a UI mutation and waits for the redraw.
func (r *TestAppRunner) QueueUpdateDraw(f func()) {
	r.app.QueueUpdateDraw(f)
	time.Sleep(10 * time.Millisecond)
}
