// SPDX-License-Identifier: EPL-2.0

package ampliphase_test

import (
	"bytes"
	"io"
)

// zeros returns n bytes of silent s16le audio.
func zeros(n int) io.Reader {
	return bytes.NewReader(make([]byte, n))
}
