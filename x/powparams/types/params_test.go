package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cle-coin/cle/x/powparams/types"
)

func TestParseReward(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "100", want: "100"},
		{in: "340282366920938463463374607431768211456", want: "340282366920938463463374607431768211456"},
		{in: "-1", wantErr: true},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "1_000", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "0b1", wantErr: true},
		{in: "0o7", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: " 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := types.ParseReward(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidReward)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	assert.Equal(t, "difficulty=1000 reward=1", types.DefaultParams().String())

	p := types.DefaultParams()
	p.Difficulty = uint256.Int{}
	require.ErrorIs(t, p.Validate(), types.ErrInvalidDifficulty)

	p = types.DefaultParams()
	p.Reward = math.NewInt(-3)
	require.ErrorIs(t, p.Validate(), types.ErrInvalidReward)

	p = types.DefaultParams()
	p.Reward = math.Int{}
	require.ErrorIs(t, p.Validate(), types.ErrInvalidReward)
}

func TestMsgSetAuthor_ValidateBasic(t *testing.T) {
	require.NoError(t, types.MsgSetAuthor{Author: make([]byte, 20)}.ValidateBasic())
	require.NoError(t, types.MsgSetAuthor{Author: make([]byte, 32)}.ValidateBasic())
	require.ErrorIs(t, types.MsgSetAuthor{}.ValidateBasic(), types.ErrAuthorDecode)
	require.ErrorIs(t, types.MsgSetAuthor{Author: []byte{1}}.ValidateBasic(), types.ErrAuthorDecode)
}
