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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// TxType is the EIP-2718 transaction type byte, extended with the OP stack
// deposit type. The zero value is LegacyTxType.
type TxType byte

// Transaction types. 3 is reserved for EIP-4844 blob transactions, which
// are not part of this set.
const (
	LegacyTxType     TxType = 0
	AccessListTxType TxType = 1
	DynamicFeeTxType TxType = 2
	SetCodeTxType    TxType = 4
	DepositTxType    TxType = 0x7E
)

// AllTxTypes lists every known type in ascending code order.
var AllTxTypes = [...]TxType{
	LegacyTxType,
	AccessListTxType,
	DynamicFeeTxType,
	SetCodeTxType,
	DepositTxType,
}

// ErrInvalidTxType is returned when a wide integer does not narrow to a
// known type. Unlike UnexpectedTypeError it does not carry the value.
var ErrInvalidTxType = errors.New("invalid transaction type")

// UnexpectedTypeError is returned by TxTypeFromByte for a byte outside the
// known set.
type UnexpectedTypeError struct {
	Type byte
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected tx type: 0x%02x", e.Type)
}

var knownTxTypes [256]bool

func init() {
	for _, t := range AllTxTypes {
		knownTxTypes[t] = true
	}
}

// IsKnownTxType reports whether b is the code of one of AllTxTypes.
func IsKnownTxType(b byte) bool {
	return knownTxTypes[b]
}

func TxTypeFromByte(b byte) (TxType, error) {
	switch TxType(b) {
	case LegacyTxType, AccessListTxType, DynamicFeeTxType, SetCodeTxType, DepositTxType:
		return TxType(b), nil
	default:
		return 0, &UnexpectedTypeError{Type: b}
	}
}

func TxTypeFromUint64(v uint64) (TxType, error) {
	if v > 0xff {
		return 0, ErrInvalidTxType
	}
	t, err := TxTypeFromByte(byte(v))
	if err != nil {
		return 0, ErrInvalidTxType
	}
	return t, nil
}

// TxTypeFromHex narrows a JSON-RPC quantity.
func TxTypeFromHex(v hexutil.Uint64) (TxType, error) {
	return TxTypeFromUint64(uint64(v))
}

func TxTypeFromUint256(v *uint256.Int) (TxType, error) {
	if v == nil || !v.IsUint64() {
		return 0, ErrInvalidTxType
	}
	return TxTypeFromUint64(v.Uint64())
}

func (t TxType) Byte() byte { return byte(t) }

// Type returns the envelope type byte.
func (t TxType) Type() byte { return byte(t) }

func (t TxType) Uint64() uint64 { return uint64(t) }

func (t TxType) Hex() hexutil.Uint64 { return hexutil.Uint64(t) }

// Equal compares t with a raw type byte.
func (t TxType) Equal(b byte) bool { return byte(t) == b }

// Valid is false only for values produced by an unchecked conversion.
func (t TxType) Valid() bool { return IsKnownTxType(byte(t)) }

// IsDeposit reports whether t is the OP stack deposit type. Deposits carry
// no signature and are not priced by the fee market.
func (t TxType) IsDeposit() bool { return t == DepositTxType }

func (t TxType) String() string {
	switch t {
	case LegacyTxType:
		return "legacy"
	case AccessListTxType:
		return "eip2930"
	case DynamicFeeTxType:
		return "eip1559"
	case SetCodeTxType:
		return "eip7702"
	case DepositTxType:
		return "deposit"
	default:
		return fmt.Sprintf("TxType(0x%02x)", byte(t))
	}
}

// Compare orders types by code, for use with slices.SortFunc.
func Compare(a, b TxType) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
