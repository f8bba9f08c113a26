package results

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("test error")

func TestResult(t *testing.T) {
	req := require.New(t)

	r := Success[int, error](2)
	req.True(r.IsSuccess())
	req.False(r.IsFailure())
	req.Equal(2, r.Value())
	req.NoError(r.Err())

	r = Failure[int](ErrTest)
	req.False(r.IsSuccess())
	req.True(r.IsFailure())
	req.Equal(0, r.Value())
	req.ErrorIs(r.Err(), ErrTest)
}

func TestNew(t *testing.T) {
	req := require.New(t)

	r := New(1, nil)
	req.True(r.IsSuccess())
	req.Equal(1, r.Value())

	r = New(1, ErrTest)
	req.True(r.IsFailure())
	req.ErrorIs(r.Err(), ErrTest)
}

func TestNilPayloads(t *testing.T) {
	req := require.New(t)

	s := Success[*int, error](nil)
	req.True(s.IsSuccess())
	req.Nil(s.Value())
	req.Nil(s.Err())

	f := Failure[*int, error](nil)
	req.True(f.IsFailure())
	req.Nil(f.Value())
	req.Nil(f.Err())

	req.NotEqual(s, f)
}

func TestZeroResultIsSuccess(t *testing.T) {
	req := require.New(t)

	var r Result[string, error]
	req.True(r.IsSuccess())
	req.Equal("", r.Value())
}

func TestUnwrap(t *testing.T) {
	req := require.New(t)

	v, err, ok := Success[string, any]("hello").Unwrap()
	req.True(ok)
	req.Equal("hello", v)
	req.Nil(err)

	v, err, ok = Failure[string, any]("raw string").Unwrap()
	req.False(ok)
	req.Equal("", v)
	req.Equal("raw string", err)
}

func TestString(t *testing.T) {
	req := require.New(t)

	req.Equal("success(3)", Success[int, any](3).String())
	req.Equal("failure(test error)", Failure[int](ErrTest).String())
}
