// Package resample provides rational sample-rate conversion using polyphase
// FIR filtering with anti-aliasing defaults, across four PCM sample
// formats (S16, S32, F32, F64).
//
// Quality modes:
//   - QualityFast: lower CPU, lower attenuation
//   - QualityBalanced: default mode
//   - QualityBest: higher attenuation and flatter passband
//
// Each named mode selects a row from the original resampler's numbered
// 0-10 quality table (see WithQualityLevel for direct access); taps per
// phase and Kaiser beta are derived from that row's stopband attenuation
// and transition bandwidth rather than hard-coded per mode.
//
// Common workflows:
//   - NewRational(up, down, opts...)
//   - NewForRates(inRate, outRate, opts...)
//   - Resample(input, up, down, opts...)
//   - Upsample2x / Downsample2x convenience wrappers
//   - ResampleAny(in, out) for multi-channel or non-F64 formats
package resample
