package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the fixed 8-byte prefix of every PNG datastream.
// See https://www.w3.org/TR/png/#5PNG-file-signature.
var Signature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// ErrFormat reports a malformed PNG container: a bad signature or a chunk
// whose declared length runs past the end of the buffer.
var ErrFormat = errors.New("invalid PNG data")

// Chunk is one segment of a PNG datastream. The CRC is carried as stored in
// the file; it is never verified here, corruption surfaces as a decode
// failure further down the pipeline.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

// Length returns the declared payload length of the chunk.
func (c Chunk) Length() int {
	return len(c.Data)
}

// Scanner walks the chunks of an in-memory PNG buffer. Usage mirrors
// bufio.Scanner:
//
//	s, err := png.NewScanner(data)
//	for s.Scan() {
//	    c := s.Chunk()
//	    ...
//	}
//	if err := s.Err(); err != nil { ... }
//
// Chunk payloads alias the underlying buffer and must not be modified.
type Scanner struct {
	data []byte
	off  int
	cur  Chunk
	err  error
	done bool
}

// NewScanner validates the PNG signature and returns a scanner positioned at
// the first chunk. Fails with ErrFormat if the signature does not match.
func NewScanner(data []byte) (*Scanner, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, fmt.Errorf("%w: missing PNG signature", ErrFormat)
	}
	return &Scanner{data: data, off: len(Signature)}, nil
}

// Scan advances to the next chunk. It returns false after the IEND chunk,
// at the end of the buffer, or on a structural error (check Err).
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	if s.off >= len(s.data) {
		s.done = true
		return false
	}
	// Length (4 bytes, big endian) + type (4 bytes).
	if len(s.data)-s.off < 8 {
		s.err = fmt.Errorf("%w: truncated chunk header at offset %d", ErrFormat, s.off)
		return false
	}
	length := int(binary.BigEndian.Uint32(s.data[s.off : s.off+4]))
	typ := string(s.data[s.off+4 : s.off+8])
	s.off += 8

	// Payload + CRC must fit in the remaining buffer.
	if length < 0 || len(s.data)-s.off < length+4 {
		s.err = fmt.Errorf("%w: chunk %q overruns buffer (declared %d bytes)", ErrFormat, typ, length)
		return false
	}
	payload := s.data[s.off : s.off+length]
	crc := binary.BigEndian.Uint32(s.data[s.off+length : s.off+length+4])
	s.off += length + 4

	s.cur = Chunk{Type: typ, Data: payload, CRC: crc}
	if typ == "IEND" {
		s.done = true
	}
	return true
}

// Chunk returns the chunk read by the last successful call to Scan.
func (s *Scanner) Chunk() Chunk {
	return s.cur
}

// Err returns the first structural error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Reset rewinds the scanner to the first chunk so the sequence can be
// walked again over the same buffer.
func (s *Scanner) Reset() {
	s.off = len(Signature)
	s.cur = Chunk{}
	s.err = nil
	s.done = false
}

// Text extracts the keyword/value pair from a textual chunk. For tEXt the
// payload is keyword, NUL, value. For iTXt the keyword is followed by a
// compression flag and method byte plus two more NUL-terminated fields
// (language tag, translated keyword) before the value; only uncompressed
// iTXt is accepted. Returns ok=false when the chunk is not textual, is
// compressed, or lacks the separator.
func (c Chunk) Text() (keyword, value string, ok bool) {
	switch c.Type {
	case "tEXt":
		i := bytes.IndexByte(c.Data, 0)
		if i < 0 {
			return "", "", false
		}
		return string(c.Data[:i]), string(c.Data[i+1:]), true
	case "iTXt":
		i := bytes.IndexByte(c.Data, 0)
		if i < 0 || len(c.Data) < i+3 {
			return "", "", false
		}
		keyword = string(c.Data[:i])
		if c.Data[i+1] != 0 { // compression flag
			return "", "", false
		}
		rest := c.Data[i+3:]
		// Skip language tag and translated keyword.
		for n := 0; n < 2; n++ {
			j := bytes.IndexByte(rest, 0)
			if j < 0 {
				return "", "", false
			}
			rest = rest[j+1:]
		}
		return keyword, string(rest), true
	}
	return "", "", false
}
