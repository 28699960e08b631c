package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	"github.com/holiman/uint256"
)

// Uint256Value stores a uint256 as 32 big-endian bytes.
var Uint256Value collcodec.ValueCodec[uint256.Int] = uint256Value{}

type uint256Value struct{}

func (uint256Value) Encode(v uint256.Int) ([]byte, error) {
	b := v.Bytes32()
	return b[:], nil
}

func (uint256Value) Decode(b []byte) (uint256.Int, error) {
	if len(b) != 32 {
		return uint256.Int{}, fmt.Errorf("invalid uint256 length %d", len(b))
	}
	var v uint256.Int
	v.SetBytes32(b)
	return v, nil
}

func (uint256Value) EncodeJSON(v uint256.Int) ([]byte, error) {
	return json.Marshal(v.Dec())
}

func (uint256Value) DecodeJSON(b []byte) (uint256.Int, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return uint256.Int{}, err
	}
	var v uint256.Int
	if err := v.SetFromDecimal(s); err != nil {
		return uint256.Int{}, err
	}
	return v, nil
}

func (uint256Value) Stringify(v uint256.Int) string {
	return v.Dec()
}

func (uint256Value) ValueType() string {
	return "uint256"
}
