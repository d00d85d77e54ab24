// SPDX-License-Identifier: MIT

package jsonio

import "errors"

// ErrMalformedInput is returned when the input document is not an object
// with two non-empty rectangular numeric matrices "X" and "W".
var ErrMalformedInput = errors.New("jsonio: malformed input")
