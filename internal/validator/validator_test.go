package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	validator := New()

	require.NotNil(t, validator)
	require.NotNil(t, validator.Errors)
	require.Equal(t, 0, len(validator.Errors))
}

func TestValidator_AddError(t *testing.T) {
	validator := New()
	validator.AddError("name", "Name is required")
	validator.AddError("name", "second message is ignored")
	require.Len(t, validator.Errors, 1)
	require.Equal(t, "Name is required", validator.Errors["name"])
}

func TestValidator_Check(t *testing.T) {
	validator := New()
	validator.Check(true, "bio", "Bio is required")
	validator.Check(false, "name", "Name is required")
	require.Len(t, validator.Errors, 1)
	require.Equal(t, "Name is required", validator.Errors["name"])
}

func TestValidator_Valid(t *testing.T) {
	validator := New()
	require.True(t, validator.Valid())
	validator.Errors["name"] = "Name is required"
	require.False(t, validator.Valid())
}

func TestPath(t *testing.T) {
	require.Equal(t, "locationLinks.0", Path("locationLinks", 0))
	require.Equal(t, "phoneContacts.2.phoneNumber", Path("phoneContacts", 2, "phoneNumber"))
}

func TestValidationError(t *testing.T) {
	fields := map[string]string{"name": "Name is required"}
	err := NewValidationError("Validation failed", fields)
	fields["bio"] = "mutated after the fact"

	require.Len(t, err.Fields, 1)
	require.Contains(t, err.Error(), "1 invalid field")
}
