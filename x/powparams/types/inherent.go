package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InherentIdentifier keys one item of per-block inherent data.
type InherentIdentifier [8]byte

func (id InherentIdentifier) String() string { return string(id[:]) }

// RewardsInherentIdentifier keys the block author payload.
var RewardsInherentIdentifier = InherentIdentifier{'r', 'e', 'w', 'a', 'r', 'd', 's', '_'}

// InherentData is the set of inherent payloads supplied for one block.
type InherentData struct {
	data map[InherentIdentifier][]byte
}

func NewInherentData() *InherentData {
	return &InherentData{data: make(map[InherentIdentifier][]byte)}
}

// Put stores payload under id. An identifier may only be put once.
func (d *InherentData) Put(id InherentIdentifier, payload []byte) error {
	if _, ok := d.data[id]; ok {
		return errorsmod.Wrapf(ErrInvalidInherent, "inherent %q already exists", id)
	}
	d.data[id] = bytes.Clone(payload)
	return nil
}

func (d *InherentData) Get(id InherentIdentifier) ([]byte, bool) {
	payload, ok := d.data[id]
	return payload, ok
}

func (d *InherentData) Len() int { return len(d.data) }

// DecodeAuthor turns a raw inherent payload into an account address.
func DecodeAuthor(raw []byte) (sdk.AccAddress, error) {
	if len(raw) != 20 && len(raw) != 32 {
		return nil, errorsmod.Wrapf(ErrAuthorDecode, "unexpected author length %d", len(raw))
	}
	if err := sdk.VerifyAddressFormat(raw); err != nil {
		return nil, errorsmod.Wrap(ErrAuthorDecode, err.Error())
	}
	return sdk.AccAddress(bytes.Clone(raw)), nil
}

// InherentDataProvider supplies the local block producer as the author.
type InherentDataProvider struct {
	Author sdk.AccAddress
}

func (p InherentDataProvider) Identifier() InherentIdentifier {
	return RewardsInherentIdentifier
}

func (p InherentDataProvider) ProvideInherentData(d *InherentData) error {
	return d.Put(RewardsInherentIdentifier, p.Author)
}

// ErrorToString renders an encoded InherentError, reporting false when bz is
// not one.
func (p InherentDataProvider) ErrorToString(bz []byte) (string, bool) {
	ierr, ok := TryFromInherentError(p.Identifier(), bz)
	if !ok {
		return "", false
	}
	return ierr.Error(), true
}

// InherentError is reported back to the producer when its inherent is
// rejected. Every InherentError is fatal to the block.
type InherentError struct {
	Message string `json:"message"`
}

func (e InherentError) Error() string { return fmt.Sprintf("inherent error: %s", e.Message) }

func (e InherentError) IsFatal() bool { return true }

func EncodeInherentError(e InherentError) []byte {
	bz, _ := json.Marshal(e)
	return bz
}

// TryFromInherentError decodes data only when it belongs to the rewards
// inherent.
func TryFromInherentError(id InherentIdentifier, data []byte) (InherentError, bool) {
	if id != RewardsInherentIdentifier {
		return InherentError{}, false
	}
	var e InherentError
	if err := json.Unmarshal(data, &e); err != nil {
		return InherentError{}, false
	}
	return e, true
}

// EncodeInherentTx frames an inherent payload as a proposal tx:
// the 8-byte identifier followed by the payload.
func EncodeInherentTx(id InherentIdentifier, payload []byte) []byte {
	tx := make([]byte, 0, len(id)+len(payload))
	tx = append(tx, id[:]...)
	return append(tx, payload...)
}

// ParseInherentTx reports whether tx is a rewards inherent and returns its
// payload.
func ParseInherentTx(tx []byte) ([]byte, bool) {
	if len(tx) < len(RewardsInherentIdentifier) ||
		!bytes.Equal(tx[:len(RewardsInherentIdentifier)], RewardsInherentIdentifier[:]) {
		return nil, false
	}
	return tx[len(RewardsInherentIdentifier):], true
}
