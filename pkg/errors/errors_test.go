package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPolicyNotFound, "policy missing")
	assert.Equal(t, `[POLICY_NOT_FOUND] policy missing`, err.Error())
	assert.Equal(t, ErrPolicyNotFound, err.Code)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrPolicyNotFound, "policy %q is not defined", "minions")
	assert.Equal(t, `[POLICY_NOT_FOUND] policy "minions" is not defined`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("file unreadable")
	err := Wrap(cause, ErrConfigLoad, "failed to load config")

	assert.Equal(t, `[CONFIG_LOAD] failed to load config: file unreadable`, err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrConfigLoad, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrConfigLoad, "ignored %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrDenied, "denied")
	assert.True(t, IsErrorCode(err, ErrDenied))
	assert.False(t, IsErrorCode(err, ErrInternal))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrDenied))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrConfigParse, "bad toml")
	outer := fmt.Errorf("loading: %w", inner)
	assert.True(t, IsErrorCode(outer, ErrConfigParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetErrorCode(New(ErrConfigParse, "bad")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPolicyInvalid, "bad policy").WithDetail("policy", "minions")
	require.NotNil(t, err.Details)
	assert.Equal(t, "minions", err.Details["policy"])
}
