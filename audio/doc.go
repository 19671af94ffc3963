// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package audio analyses the frequency content of playing audio for
// audio-reactive sketches.
//
// An [Analyser] keeps the most recent FFT window of mono samples and
// reports a smoothed decibel spectrum, like the Web Audio AnalyserNode. A
// [Tap] sits between a decoded stream and the audio player so everything
// that is heard is also analysed:
//
//	an, _ := audio.NewAnalyser(512, audio.WithSmoothing(0.9))
//	track, err := playback.OpenTrack(ctx, "song.mp3", an)
//	...
//	track.Play()
//	spectrum := an.FloatFrequencyData(nil)
//
// The package has no platform dependencies; decoding and output live in
// the playback subpackage.
package audio

// SampleRate is the sample rate used for playback and analysis.
const SampleRate = 44100
