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
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrlp "github.com/ethereum/go-ethereum/rlp"
	fuzz "github.com/google/gofuzz"
	"gopkg.in/yaml.v3"

	"github.com/erigontech/optxtype/rlp"
)

// JSON uses the JSON-RPC quantity form, e.g. "0x7e".
func (t TxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Hex())
}

func (t *TxType) UnmarshalJSON(input []byte) error {
	var v hexutil.Uint64
	if err := json.Unmarshal(input, &v); err != nil {
		return err
	}
	tt, err := TxTypeFromHex(v)
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// YAML uses the plain numeric code.
func (t TxType) MarshalYAML() (interface{}, error) {
	return uint8(t), nil
}

func (t *TxType) UnmarshalYAML(value *yaml.Node) error {
	var v uint64
	if err := value.Decode(&v); err != nil {
		return err
	}
	tt, err := TxTypeFromUint64(v)
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// EncodeRLP writes the type as an rlp integer, for use as a list field.
// This differs from the envelope byte for LegacyTxType, which encodes as 0x80.
func (t TxType) EncodeRLP(w io.Writer) error {
	var b [9]byte
	n := rlp.EncodeU64(uint64(t), b[:])
	_, err := w.Write(b[:n])
	return err
}

func (t *TxType) DecodeRLP(s *gethrlp.Stream) error {
	v, err := s.Uint64()
	if err != nil {
		return err
	}
	tt, err := TxTypeFromUint64(v)
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// Fuzz implements fuzz.Interface, only ever producing known types.
func (t *TxType) Fuzz(c fuzz.Continue) {
	*t = AllTxTypes[c.Intn(len(AllTxTypes))]
}
