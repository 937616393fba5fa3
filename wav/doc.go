// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files holding linear PCM audio.
//
// The package keeps decoded audio in its raw little-endian byte form: a
// Buffer pairs a Format descriptor (sample rate, bit depth, channel count)
// with the data chunk payload exactly as it appears on disk. Higher layers
// mix and convert those bytes; this package only moves them in and out of
// the container format.
//
// # Decoding
//
// Decode walks the chunk sequence of a WAV stream:
//
//	file, _ := os.Open("hit.wav")
//	defer file.Close()
//	buf, err := wav.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(buf.Format.SampleRate, buf.Frames())
//
// Chunks other than fmt and data are skipped using their declared sizes,
// including the padding byte after odd-sized chunks. Only format tag 1
// (integer PCM) is accepted. DecodeBytes and DecodeFile wrap Decode for
// in-memory and on-disk sources.
//
// # Encoding
//
// Encode writes a minimal 44-byte header followed by the payload:
//
//	err := wav.EncodeFile("out.wav", wav.Canonical(), data)
//
// The writer never emits extensible headers or extra chunks, so its output
// is readable by the decoder and by the github.com/go-audio tools alike.
//
// # Silence
//
// NewSilent allocates a zeroed buffer spanning a duration:
//
//	base, err := wav.NewSilent(3.5, wav.Canonical())
//
// Zero bytes decode to digital silence for 16-bit PCM. For 8-bit PCM true
// silence is the bias value 128, so prefer 16-bit formats for generated
// bases.
//
// # Interop
//
// Buffer converts to and from github.com/go-audio/audio IntBuffer values,
// so decoded audio can feed go-audio encoders and effects directly.
package wav
