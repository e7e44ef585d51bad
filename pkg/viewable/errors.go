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

import "fmt"

// MissingBodyError reports that a view's BuildBody returned no widget. It is
// the only failure Build surfaces; everything else in the lifecycle is
// treated as a benign race and swallowed.
type MissingBodyError struct {
	// View names the Body implementation that failed to build.
	View string
}

func (e *MissingBodyError) Error() string {
	return fmt.Sprintf("view %s did not produce a body", e.View)
}
