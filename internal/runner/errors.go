// SPDX-License-Identifier: EPL-2.0

package runner

import "errors"

var (
	ErrUnsupportedFormat = errors.New("no decoder registered for extension")
)
