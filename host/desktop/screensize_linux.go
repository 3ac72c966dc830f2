// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/xerrors"
)

// screenSize returns the size of the X server's default screen.
func screenSize() (image.Point, error) {
	xc, err := xgb.NewConn()
	if err != nil {
		return image.Point{}, xerrors.Errorf("desktop: xgb.NewConn failed: %w", err)
	}
	defer xc.Close()
	s := xproto.Setup(xc).DefaultScreen(xc)
	return image.Point{int(s.WidthInPixels), int(s.HeightInPixels)}, nil
}
