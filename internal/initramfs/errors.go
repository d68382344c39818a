// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import "errors"

var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrNoInit         = errors.New("no init file")
	ErrInvalidPath    = errors.New("invalid archive path")
)
