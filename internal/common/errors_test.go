package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")

	err := NewStoreError("update", "Salary", cause)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `category store failure: update "Salary": UNIQUE constraint failed`, err.Error())

	var storeErr *StoreError
	require.ErrorAs(t, fmt.Errorf("sync failed: %w", err), &storeErr)
	assert.Equal(t, "update", storeErr.Op)
	assert.Equal(t, "Salary", storeErr.Name)
}

func TestStoreErrorWithoutName(t *testing.T) {
	err := NewStoreError("open", "", errors.New("unable to open database file"))
	assert.Equal(t, "category store failure: open: unable to open database file", err.Error())
}

func TestNewStoreErrorNil(t *testing.T) {
	assert.NoError(t, NewStoreError("close", "", nil))
}

func TestUserError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewUserError("could not open the category database", cause)

	assert.Equal(t, "could not open the category database: no such file", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
