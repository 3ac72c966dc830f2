// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package desktop

import (
	"image"

	"golang.org/x/xerrors"
)

func screenSize() (image.Point, error) {
	return image.Point{}, xerrors.New("desktop: no display server query on this platform")
}
