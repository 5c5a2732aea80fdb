// SPDX-License-Identifier: EPL-2.0

package audio

// Conform builds the pipeline that turns a decoded source into the mono
// stream at rate that the output device consumes: channels are averaged
// first, then the result is resampled when the rates differ.
func Conform(src Source, rate int) (Source, error) {
	if rate <= 0 || src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, ErrInvalidRate
	}

	var out Source = src
	if out.Channels() != 1 {
		out = NewMonoMixer(out)
	}
	if out.SampleRate() != rate {
		out = NewResampler(out, rate)
	}

	return out, nil
}
