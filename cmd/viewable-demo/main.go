/*
Viewable
Copyright (c) 2026 The Viewable Contributors.

This file is part of Viewable.

Viewable is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Viewable is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Viewable.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command viewable-demo shows the view lifecycle end to end: a window view
// with an exit button is built, attached and destroyed, with each lifecycle
// hook logged.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprigui/viewable/pkg/toolkit"
	"github.com/sprigui/viewable/pkg/toolkit/tviewtk"
	"github.com/sprigui/viewable/pkg/viewable"
)

type demoView struct {
	kit *tviewtk.Kit
	app *tview.Application
}

func (v *demoView) BuildBody(toolkit.Widget) toolkit.Widget {
	win := v.kit.NewWindow("Viewable Demo")

	text := v.kit.Adopt(win, tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("This window is managed by a view.\nPress the button to destroy it."))
	button := v.kit.Adopt(win, tview.NewButton("Exit").SetSelectedFunc(func() {
		v.app.Stop()
	}))

	if err := v.kit.Attach(text, toolkit.LayoutPack, toolkit.AttachOptions{Proportion: 1}); err != nil {
		log.Error().Err(err).Msg("failed to attach text")
	}
	if err := v.kit.Attach(button, toolkit.LayoutPack, toolkit.AttachOptions{FixedSize: 1, Focus: true}); err != nil {
		log.Error().Err(err).Msg("failed to attach button")
	}
	return win
}

func (v *demoView) OnViewMap() {
	log.Info().Msg("view mapped")
}

func (v *demoView) OnViewDestroy() {
	log.Info().Msg("view destroyed")
}

func main() {
	logPath := flag.String("log", "", "append logs to this file instead of discarding them")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		log.Logger = log.Output(f)
	} else {
		// The terminal belongs to tview while the demo runs.
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	app := tview.NewApplication()
	kit := tviewtk.New(app)

	view := viewable.New(kit, &demoView{kit: kit, app: app})
	if _, err := view.Build(nil); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to build view: %v\n", err)
		os.Exit(1)
	}
	defer view.Destroy()

	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to run application: %v\n", err)
		os.Exit(1)
	}
}
