// Copyright 2023 The mvt (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geometry

// ZigZag maps a signed integer onto the unsigned integers so that
// values of small magnitude, whether positive or negative, map to
// small unsigned values: 0 → 0, -1 → 1, 1 → 2, -2 → 3, and so on.
func ZigZag(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// UnZigZag is the inverse of ZigZag.
func UnZigZag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}
