package errors_test

import (
	goerrors "errors"
	"testing"

	"github.com/11090815/telcrypt/errors"
	"github.com/stretchr/testify/require"
)

func TestKindErrors(t *testing.T) {
	err := errors.NewKindErrorf(errors.KindInvalidLength, "ciphertext length %d is not a multiple of %d", 7, 8)
	require.True(t, goerrors.Is(err, errors.ErrInvalidLength))
	require.False(t, goerrors.Is(err, errors.ErrInvalidKey))
	require.Equal(t, "InvalidLengthError: ciphertext length 7 is not a multiple of 8", err.Error())
	require.Equal(t, errors.KindInvalidLength, err.Kind())

	wrapped := errors.Wrapf(err, "failed decrypting response")
	require.True(t, goerrors.Is(wrapped, errors.ErrInvalidLength))
	require.Contains(t, wrapped.Error(), "failed decrypting response")

	plain := errors.NewError("something else")
	require.False(t, goerrors.Is(plain, errors.ErrInvalidLength))
	require.True(t, goerrors.Is(plain, plain))
	require.False(t, goerrors.Is(errors.Wrapf(goerrors.New("io"), "read"), errors.ErrInvalidKey))
}

func TestTrace(t *testing.T) {
	errors.SetTrace()
	err := errors.NewErrorf("bad key length %d", 3)
	require.Contains(t, err.Error(), "bad key length 3")
	require.Contains(t, err.Error(), "=>")
}
