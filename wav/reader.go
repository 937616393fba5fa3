package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// fmtChunkMinSize is the payload size of a plain PCM fmt chunk. Extended
// fmt chunks carry more bytes; the extension is skipped.
const fmtChunkMinSize = 16

// Decode reads a complete RIFF/WAVE PCM stream from r. It returns the
// declared format together with the raw data payload, without converting
// either. Chunks other than fmt and data are skipped using their declared
// size, and the one-byte padding after odd-sized chunks is consumed.
//
// The fmt chunk must appear before the data chunk, and the format tag
// must be 1 (integer PCM).
func Decode(r io.Reader) (*Buffer, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, ErrNotWave
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWave
	}

	var (
		format   Format
		haveFmt  bool
		chunkHdr [8]byte
	)

	for {
		if _, err := io.ReadFull(r, chunkHdr[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if !haveFmt {
					return nil, ErrNoFmtChunk
				}
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}

		id := string(chunkHdr[0:4])
		size := binary.LittleEndian.Uint32(chunkHdr[4:8])

		switch id {
		case "fmt ":
			f, err := readFmtChunk(r, size)
			if err != nil {
				return nil, err
			}
			format = f
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, ErrNoFmtChunk
			}
			data := make([]byte, size)
			if _, err := io.ReadFull(r, data); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, ErrTruncatedData
				}
				return nil, fmt.Errorf("reading data chunk: %w", err)
			}
			return &Buffer{Format: format, Data: data}, nil
		default:
			if err := skipChunk(r, size); err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, fmt.Errorf("skipping %q chunk: %w", id, err)
				}
				if !haveFmt {
					return nil, ErrNoFmtChunk
				}
				return nil, ErrNoDataChunk
			}
		}
	}
}

// DecodeBytes parses a WAV file already held in memory.
func DecodeBytes(data []byte) (*Buffer, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens and parses the WAV file at path.
func DecodeFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return buf, nil
}

// readFmtChunk parses the PCM fields of a fmt chunk of the declared size.
func readFmtChunk(r io.Reader, size uint32) (Format, error) {
	if size < fmtChunkMinSize {
		return Format{}, ErrBadFmtChunk
	}

	var raw [fmtChunkMinSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Format{}, ErrBadFmtChunk
	}

	if tag := binary.LittleEndian.Uint16(raw[0:2]); tag != 1 {
		return Format{}, ErrNotPCM
	}

	f := Format{
		Channels:      int(binary.LittleEndian.Uint16(raw[2:4])),
		SampleRate:    int(binary.LittleEndian.Uint32(raw[4:8])),
		BitsPerSample: int(binary.LittleEndian.Uint16(raw[14:16])),
	}
	if f.Channels == 0 || f.SampleRate == 0 || f.BitsPerSample == 0 {
		return Format{}, ErrBadFmtChunk
	}

	// The declared byte rate and block align at bytes 8..14 are ignored;
	// both are derived from the fields above.
	if err := skipChunk(r, size-fmtChunkMinSize); err != nil {
		return Format{}, ErrBadFmtChunk
	}
	return f, nil
}

// skipChunk discards a chunk payload of the declared size plus the RIFF
// padding byte after odd sizes.
func skipChunk(r io.Reader, size uint32) error {
	n := int64(size)
	if size%2 == 1 {
		n++
	}
	if n == 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, r, n)
	return err
}
