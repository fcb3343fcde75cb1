package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		label string
		want  TransactionType
		ok    bool
	}{
		{"IN", TxIn, true},
		{" in ", TxIn, true},
		{"入庫", TxIn, true},
		{"Inbound", TxIn, true},
		{"OUT", TxOut, true},
		{"出庫", TxOut, true},
		{"outbound", TxOut, true},
		{"", "", false},
		{"transfer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseTransactionType(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionTypeSign(t *testing.T) {
	assert.Equal(t, 1, TxIn.Sign())
	assert.Equal(t, -1, TxOut.Sign())
}

func TestUserPassword(t *testing.T) {
	u := &User{Username: "alice"}
	require.NoError(t, u.SetPassword("pw1"))

	assert.NotEqual(t, "pw1", u.Password)
	assert.True(t, u.CheckPassword("pw1"))
	assert.False(t, u.CheckPassword("pw2"))

	var missing *User
	assert.False(t, missing.CheckPassword("pw1"))
}

func TestRotateTokenVersion(t *testing.T) {
	u := &User{}
	first := u.RotateTokenVersion()
	second := u.RotateTokenVersion()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, u.TokenVersion)
}
