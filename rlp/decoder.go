// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"errors"
	"fmt"
	"io"
)

var ErrDecode = errors.New("rlp: decode")

// Decoder is a forward-only cursor over an rlp payload. Reads past the end
// return io.EOF from ReadByte/PeekByte and io.ErrUnexpectedEOF when an
// element is truncated.
type Decoder struct {
	buf *buf
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{
		buf: newBuf(buf, 0),
	}
}

func (d *Decoder) String() string {
	return fmt.Sprintf(`left=%x pos=%d`, d.buf.Bytes(), d.buf.off)
}

func (d *Decoder) Consumed() []byte {
	return d.buf.u[:d.buf.off]
}

func (d *Decoder) Underlying() []byte {
	return d.buf.Underlying()
}

func (d *Decoder) Empty() bool {
	return d.buf.empty()
}

func (d *Decoder) Offset() int {
	return d.buf.Offset()
}

// Bytes returns the unconsumed part of the payload.
func (d *Decoder) Bytes() []byte {
	return d.buf.Bytes()
}

func (d *Decoder) ReadByte() (n byte, err error) {
	return d.buf.ReadByte()
}

func (d *Decoder) PeekByte() (n byte, err error) {
	return d.buf.PeekByte()
}

func (d *Decoder) PeekToken() (Token, error) {
	prefix, err := d.PeekByte()
	if err != nil {
		return TokenUnknown, err
	}
	return identifyToken(prefix), nil
}

// Elem reads the next element and returns its content without the prefix.
func (d *Decoder) Elem() ([]byte, Token, error) {
	w := d.buf
	// figure out what we are reading
	prefix, err := w.ReadByte()
	if err != nil {
		return nil, TokenUnknown, err
	}
	token := identifyToken(prefix)

	var (
		buf   []byte
		sz    int
		lenSz int
	)
	switch token {
	case TokenDecimal:
		// in this case, the value is just the byte itself
		buf = []byte{prefix}
	case TokenShortList, TokenShortBlob:
		sz = int(token.Diff(prefix))
		buf, err = nextFull(w, sz)
	case TokenLongList, TokenLongBlob:
		lenSz = int(token.Diff(prefix))
		sz, err = nextBeInt(w, lenSz)
		if err != nil {
			return nil, token, err
		}
		buf, err = nextFull(w, sz)
	default:
		return nil, token, fmt.Errorf("%w: unknown token", ErrDecode)
	}
	if err != nil {
		return nil, token, fmt.Errorf("read data: %w", err)
	}
	return buf, token, nil
}

func nextFull(b *buf, n int) ([]byte, error) {
	if n < 0 || b.Len() < n {
		return nil, io.ErrUnexpectedEOF
	}
	return b.Next(n), nil
}

func nextBeInt(b *buf, lenSz int) (int, error) {
	if lenSz > 8 {
		return 0, fmt.Errorf("%w: length of length %d", ErrDecode, lenSz)
	}
	bts, err := nextFull(b, lenSz)
	if err != nil {
		return 0, err
	}
	if len(bts) > 0 && bts[0] == 0 {
		return 0, fmt.Errorf("%w: leading zero in length", ErrDecode)
	}
	var sz uint64
	for _, c := range bts {
		sz = sz<<8 | uint64(c)
	}
	if sz > uint64(b.Len()) {
		return 0, io.ErrUnexpectedEOF
	}
	return int(sz), nil
}

type buf struct {
	u   []byte
	off int
}

func newBuf(u []byte, off int) *buf {
	return &buf{u: u, off: off}
}

func (b *buf) empty() bool { return len(b.u) <= b.off }

func (b *buf) PeekByte() (n byte, err error) {
	if len(b.u) <= b.off {
		return 0, io.EOF
	}
	return b.u[b.off], nil
}

func (b *buf) ReadByte() (n byte, err error) {
	if len(b.u) <= b.off {
		return 0, io.EOF
	}
	b.off++
	return b.u[b.off-1], nil
}

func (b *buf) Next(n int) (xs []byte) {
	m := b.Len()
	if n > m {
		n = m
	}
	data := b.u[b.off : b.off+n]
	b.off += n
	return data
}

func (b *buf) Offset() int {
	return b.off
}

func (b *buf) Bytes() []byte {
	return b.u[b.off:]
}

func (b *buf) Len() int { return len(b.u) - b.off }

func (b *buf) Underlying() []byte {
	return b.u
}
