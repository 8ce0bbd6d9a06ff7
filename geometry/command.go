// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// A CommandID identifies one of the three MVT geometry commands.
type CommandID uint32

const (
	// MoveTo starts a new point or sub-path. Each repetition takes one
	// delta pair.
	MoveTo CommandID = 1
	// LineTo draws a segment from the cursor. Each repetition takes one
	// delta pair.
	LineTo CommandID = 2
	// ClosePath closes the current ring. It always has a count of 1
	// and takes no parameters.
	ClosePath CommandID = 7
)

// MaxCount is the largest repeat count a command integer can carry.
const MaxCount = 1<<29 - 1

// Command packs a command ID and repeat count into a command integer.
// Panics if the count is negative or exceeds MaxCount.
func Command(id CommandID, count int) uint32 {
	if count < 0 || count > MaxCount {
		fmtPanic("command count %d out of range", count)
	}
	return uint32(count)<<3 | uint32(id&0x7)
}

// SplitCommand unpacks a command integer into its ID and repeat count.
func SplitCommand(c uint32) (CommandID, int) {
	return CommandID(c & 0x7), int(c >> 3)
}
