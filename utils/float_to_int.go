// SPDX-License-Identifier: EPL-2.0

package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToUint8 maps a sample in [-1, 1] to an unsigned byte centred on 128,
// the layout of a time-domain analyser frame. Out of range input saturates.
func Float32ToUint8(x float32) uint8 {
	v := 128 * (x + 1)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
