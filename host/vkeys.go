// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// VirtualKey is a host virtual key code. The values match the Windows
// virtual-key numbering that view.KeyEvent uses, so codes pass through
// unchanged.
type VirtualKey uint8

const (
	VKBack     VirtualKey = 0x08
	VKTab      VirtualKey = 0x09
	VKClear    VirtualKey = 0x0C
	VKReturn   VirtualKey = 0x0D
	VKEscape   VirtualKey = 0x1B
	VKSpace    VirtualKey = 0x20
	VKPrior    VirtualKey = 0x21
	VKNext     VirtualKey = 0x22
	VKEnd      VirtualKey = 0x23
	VKHome     VirtualKey = 0x24
	VKLeft     VirtualKey = 0x25
	VKUp       VirtualKey = 0x26
	VKRight    VirtualKey = 0x27
	VKDown     VirtualKey = 0x28
	VKInsert   VirtualKey = 0x2D
	VKDelete   VirtualKey = 0x2E
	VK0        VirtualKey = 0x30
	VK9        VirtualKey = 0x39
	VKA        VirtualKey = 0x41
	VKZ        VirtualKey = 0x5A
	VKNumpad0  VirtualKey = 0x60
	VKNumpad9  VirtualKey = 0x69
	VKMultiply VirtualKey = 0x6A
	VKAdd      VirtualKey = 0x6B
	VKSubtract VirtualKey = 0x6D
	VKDecimal  VirtualKey = 0x6E
	VKDivide   VirtualKey = 0x6F
	VKF1       VirtualKey = 0x70
	VKF12      VirtualKey = 0x7B
)
