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
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type typedField struct {
	Type  TxType `json:"type" yaml:"type"`
	Nonce uint64 `json:"nonce" yaml:"nonce"`
}

func TestTxTypeJSON(t *testing.T) {
	t.Parallel()
	for _, tt := range AllTxTypes {
		enc, err := json.Marshal(tt)
		require.NoError(t, err)

		var dec TxType
		require.NoError(t, json.Unmarshal(enc, &dec))
		require.Equal(t, tt, dec)
	}

	enc, err := json.Marshal(typedField{Type: DepositTxType, Nonce: 7})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"0x7e","nonce":7}`, string(enc))

	enc, err = json.Marshal(LegacyTxType)
	require.NoError(t, err)
	require.Equal(t, `"0x0"`, string(enc))

	var dec typedField
	require.NoError(t, json.Unmarshal([]byte(`{"type":"0x4","nonce":1}`), &dec))
	require.Equal(t, SetCodeTxType, dec.Type)

	for _, bad := range []string{`"0x3"`, `"0x100"`, `"0x17e"`} {
		var tt TxType
		err := json.Unmarshal([]byte(bad), &tt)
		require.ErrorIs(t, err, ErrInvalidTxType, bad)
	}
	for _, bad := range []string{`126`, `"deposit"`, `"0x"`} {
		var tt TxType
		require.Error(t, json.Unmarshal([]byte(bad), &tt), bad)
	}
}

func TestTxTypeYAML(t *testing.T) {
	t.Parallel()
	enc, err := yaml.Marshal(typedField{Type: DepositTxType, Nonce: 7})
	require.NoError(t, err)
	require.Equal(t, "type: 126\nnonce: 7\n", string(enc))

	var dec typedField
	require.NoError(t, yaml.Unmarshal(enc, &dec))
	require.Equal(t, DepositTxType, dec.Type)

	err = yaml.Unmarshal([]byte("type: 3\n"), &dec)
	require.ErrorIs(t, err, ErrInvalidTxType)
	err = yaml.Unmarshal([]byte("type: 256\n"), &dec)
	require.ErrorIs(t, err, ErrInvalidTxType)
	require.Error(t, yaml.Unmarshal([]byte("type: deposit\n"), &dec))
}

func TestTxTypeRLPField(t *testing.T) {
	t.Parallel()
	enc, err := gethrlp.EncodeToBytes(DepositTxType)
	require.NoError(t, err)
	require.Equal(t, []byte{0x7e}, enc)

	enc, err = gethrlp.EncodeToBytes(LegacyTxType)
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, enc)

	for _, tt := range AllTxTypes {
		enc, err := gethrlp.EncodeToBytes(typedField{Type: tt, Nonce: 1024})
		require.NoError(t, err)

		var dec typedField
		require.NoError(t, gethrlp.DecodeBytes(enc, &dec))
		require.Equal(t, tt, dec.Type)
		require.Equal(t, uint64(1024), dec.Nonce)
	}

	var tt TxType
	require.ErrorIs(t, gethrlp.DecodeBytes([]byte{0x03}, &tt), ErrInvalidTxType)
	require.ErrorIs(t, gethrlp.DecodeBytes([]byte{0x82, 0x01, 0x7e}, &tt), ErrInvalidTxType)
	require.Error(t, gethrlp.DecodeBytes(nil, &tt))
}

func TestTxTypeFuzzer(t *testing.T) {
	t.Parallel()
	f := fuzz.New().NilChance(0)
	seen := make(map[TxType]bool)
	for i := 0; i < 1000; i++ {
		var tt TxType
		f.Fuzz(&tt)
		require.True(t, tt.Valid(), "generated %d", byte(tt))
		seen[tt] = true
	}
	require.Len(t, seen, len(AllTxTypes))
}
