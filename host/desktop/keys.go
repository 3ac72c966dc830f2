// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/x-z7a/skyscript/host"
)

// virtualKeys maps GLFW keys without a character to host virtual keys.
// Letters and digits share their ASCII codes in both numberings and are not
// listed.
var virtualKeys = map[glfw.Key]host.VirtualKey{
	glfw.KeyBackspace:  host.VKBack,
	glfw.KeyTab:        host.VKTab,
	glfw.KeyEnter:      host.VKReturn,
	glfw.KeyKPEnter:    host.VKReturn,
	glfw.KeyEscape:     host.VKEscape,
	glfw.KeySpace:      host.VKSpace,
	glfw.KeyPageUp:     host.VKPrior,
	glfw.KeyPageDown:   host.VKNext,
	glfw.KeyEnd:        host.VKEnd,
	glfw.KeyHome:       host.VKHome,
	glfw.KeyLeft:       host.VKLeft,
	glfw.KeyUp:         host.VKUp,
	glfw.KeyRight:      host.VKRight,
	glfw.KeyDown:       host.VKDown,
	glfw.KeyInsert:     host.VKInsert,
	glfw.KeyDelete:     host.VKDelete,
	glfw.KeyKPMultiply: host.VKMultiply,
	glfw.KeyKPAdd:      host.VKAdd,
	glfw.KeyKPSubtract: host.VKSubtract,
	glfw.KeyKPDecimal:  host.VKDecimal,
	glfw.KeyKPDivide:   host.VKDivide,
}

// controlChars are the characters the host reports for keys that do not
// print.
var controlChars = map[glfw.Key]byte{
	glfw.KeyBackspace: 0x08,
	glfw.KeyTab:       '\t',
	glfw.KeyEnter:     '\r',
	glfw.KeyKPEnter:   '\r',
	glfw.KeyEscape:    0x1b,
	glfw.KeyDelete:    0x7f,
}

// shifted is the US layout's shift row.
var shifted = map[byte]byte{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', ',': '<', '.': '>', '/': '?', '`': '~',
}

func virtualKey(k glfw.Key) host.VirtualKey {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return host.VKA + host.VirtualKey(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return host.VK0 + host.VirtualKey(k-glfw.Key0)
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return host.VKNumpad0 + host.VirtualKey(k-glfw.KeyKP0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return host.VKF1 + host.VirtualKey(k-glfw.KeyF1)
	}
	return virtualKeys[k]
}

// keyChar returns the character a key produces. name is the key's
// layout-specific name as reported by glfw.GetKeyName.
func keyChar(k glfw.Key, name string, mods glfw.ModifierKey) byte {
	if k == glfw.KeySpace {
		return ' '
	}
	if c, ok := controlChars[k]; ok {
		return c
	}
	if len(name) != 1 {
		return 0
	}
	c := name[0]
	if mods&glfw.ModShift == 0 {
		return c
	}
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	if s, ok := shifted[c]; ok {
		return s
	}
	return c
}

func keyFlags(action glfw.Action, mods glfw.ModifierKey) host.KeyFlags {
	var f host.KeyFlags
	if mods&glfw.ModShift != 0 {
		f |= host.ShiftFlag
	}
	if mods&glfw.ModAlt != 0 {
		f |= host.OptionAltFlag
	}
	if mods&glfw.ModControl != 0 {
		f |= host.ControlFlag
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		f |= host.DownFlag
	case glfw.Release:
		f |= host.UpFlag
	}
	return f
}
