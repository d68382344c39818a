// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package netconf

import "errors"

// ErrClosed is returned for operations on a closed [Socket].
var ErrClosed = errors.New("socket closed")
