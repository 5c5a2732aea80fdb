// SPDX-License-Identifier: EPL-2.0

package playback_test

import "os"

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
