package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

var (
	ErrUnauthorized      = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrAlreadyClaimed    = errorsmod.Register(ModuleName, 3, "block author already claimed")
	ErrAuthorDecode      = errorsmod.Register(ModuleName, 4, "cannot decode block author")
	ErrInvalidDifficulty = errorsmod.Register(ModuleName, 5, "invalid difficulty")
	ErrInvalidReward     = errorsmod.Register(ModuleName, 6, "invalid reward")
	ErrInvalidGenesis    = errorsmod.Register(ModuleName, 7, "invalid genesis")
	ErrIssuance          = errorsmod.Register(ModuleName, 8, "reward issuance failed")
	ErrInvalidInherent   = errorsmod.Register(ModuleName, 9, "invalid inherent")
	ErrInvalidCall       = errorsmod.Register(ModuleName, 10, "invalid privileged call")
)

// IsFatal reports whether err must abort the whole block rather than fail a
// single call.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrAuthorDecode) ||
		errors.Is(err, ErrInvalidInherent) ||
		errors.Is(err, ErrIssuance)
}
