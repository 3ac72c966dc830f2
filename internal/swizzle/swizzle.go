// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle converts pixel buffers between the BGRA byte order produced
// by the view engine and the RGBA byte order expected by GL ES uploads.
package swizzle

import "encoding/binary"

// BGRA converts p in place between the RGBA and BGRA byte orders. The
// conversion is its own inverse.
//
// It panics if the input slice length is not a multiple of 4.
func BGRA(p []byte) {
	if len(p)%4 != 0 {
		panic("swizzle: input slice length is not a multiple of 4")
	}
	for i := 0; i < len(p); i += 4 {
		p[i+0], p[i+2] = p[i+2], p[i+0]
	}
}

// Copy writes the byte-order conversion of src into dst and returns the
// number of bytes written, which is the length of the shorter slice rounded
// down to a whole pixel. src is not modified.
//
// The engine owns src and only lends it for the duration of a pixel lock, so
// converting in place is not an option there.
func Copy(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n &^= 3

	// Pixels are handled a word at a time. Reading and writing with the same
	// byte order keeps this independent of the host's endianness.
	i := 0
	for ; i+4 <= n; i += 4 {
		v := binary.LittleEndian.Uint32(src[i:])
		v = v&0xff00ff00 | v&0x000000ff<<16 | v&0x00ff0000>>16
		binary.LittleEndian.PutUint32(dst[i:], v)
	}
	return i
}
