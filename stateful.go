// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package mvt

type stateful struct {
	state state
}

type state int

// The low bit marks an invalid state, so no valid state may set it.
const (
	empty    state = 0x00
	invalid  state = 0x01
	building state = 0x10
	finished state = 0x20
)

func (s *stateful) sanityCheckState() {
	if s.state&invalid == invalid {
		fmtPanic("logic error: invalid state 0x%x", s.state)
	}
}

func (s *stateful) toState(expected, to state) error {
	// Happy path to state transition is when we are in the expected
	// state.
	if s.state == expected {
		s.state = to
		return nil
	}

	// Check for bad internal state.
	s.sanityCheckState()

	// Indicate that the state transition is invalid.
	return errUnexpectedState
}

// finish moves into the terminal state from any other state.
func (s *stateful) finish() error {
	if s.state == finished {
		return ErrFinished
	}
	s.sanityCheckState()
	s.state = finished
	return nil
}
