// Copyright 2025 The Erigon Authors
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

package types

import (
	"fmt"
	"io"

	"github.com/erigontech/optxtype/rlp"
)

// EncodingSize is the size of the type byte in a typed envelope.
func (t TxType) EncodingSize() int {
	return 1
}

// EncodeTo writes the type byte at the start of to and returns the number
// of bytes written.
func (t TxType) EncodeTo(to []byte) int {
	to[0] = byte(t)
	return 1
}

func (t TxType) MarshalBinary(w io.Writer) error {
	var b [1]byte
	t.EncodeTo(b[:])
	if _, err := w.Write(b[:]); err != nil {
		return err
	}
	return nil
}

// DecodeTxType consumes exactly one byte from d. An empty decoder yields
// io.EOF; an unknown byte yields an error matching both rlp.ErrDecode and
// ErrInvalidTxType.
func DecodeTxType(d *rlp.Decoder) (TxType, error) {
	b, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	t, err := TxTypeFromByte(b)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %w", rlp.ErrDecode, ErrInvalidTxType, err)
	}
	return t, nil
}

// ParseTxType reads the type byte at pos and returns the position after it.
func ParseTxType(payload []byte, pos int) (int, TxType, error) {
	if pos < 0 || pos > len(payload) {
		return 0, 0, fmt.Errorf("%w: position %d out of range, payload len %d", rlp.ErrDecode, pos, len(payload))
	}
	t, err := DecodeTxType(rlp.NewDecoder(payload[pos:]))
	if err != nil {
		return 0, 0, err
	}
	return pos + t.EncodingSize(), t, nil
}

// PeekTxType tells which transaction type an envelope carries without
// consuming it. Legacy transactions are bare rlp lists, all other types
// start with their type byte.
func PeekTxType(envelope []byte) (TxType, error) {
	d := rlp.NewDecoder(envelope)
	token, err := d.PeekToken()
	if err != nil {
		return 0, err
	}
	if token.IsListType() {
		return LegacyTxType, nil
	}
	b, err := d.PeekByte()
	if err != nil {
		return 0, err
	}
	if !IsKnownTxType(b) {
		return 0, &UnexpectedTypeError{Type: b}
	}
	return TxType(b), nil
}
