// seehuhn.de/go/region - region algebra and rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package region

import (
	"fmt"
	"strings"
)

// Mode selects how a [View] renders its region.
type Mode int

const (
	// Smart renders regions using their Draw method.
	Smart Mode = iota

	// Sampling renders regions using [Sample].
	Sampling
)

func (m Mode) String() string {
	switch m {
	case Smart:
		return "smart"
	case Sampling:
		return "sampling"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if m != Smart && m != Sampling {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "smart", "":
		*m = Smart
	case "sampling", "sample":
		*m = Sampling
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, text)
	}
	return nil
}

// Toggle returns the other rendering mode.
func (m Mode) Toggle() Mode {
	if m == Sampling {
		return Smart
	}
	return Sampling
}
