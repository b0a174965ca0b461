package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	validator := New()
	validator.Check(NotBlank("   "), "name", "Name is required")
	if validator.Valid() {
		t.Error("validator.Valid() should return false")
	}
	if len(validator.Errors) != 1 {
		t.Error("validator.Errors should contain one entry")
	}
	if validator.Errors["name"] != "Name is required" {
		t.Error("validator.Errors[name] should contain the correct error message")
	}
}

func TestIsPhone(t *testing.T) {
	valid := []string{
		"+1 234-567-8900",
		"1234567890",
		"+12025550123",
		"(202) 555.0123",
		"+966 (55) 123 4567",
	}
	for _, v := range valid {
		assert.True(t, IsPhone(v), "expected %q to be accepted", v)
	}

	invalid := []string{
		"",
		"12345",
		"call-me-maybe",
		"+1 234 ABC 8900",
		"++12025550123",
		"1234567890123456",
		"12025550123+",
	}
	for _, v := range invalid {
		assert.False(t, IsPhone(v), "expected %q to be rejected", v)
	}
}

func TestIsValidTimeFormat(t *testing.T) {
	assert.True(t, IsValidTimeFormat("09:00"))
	assert.True(t, IsValidTimeFormat("23:59"))
	assert.False(t, IsValidTimeFormat("9:00"))
	assert.False(t, IsValidTimeFormat("24:00"))
	assert.False(t, IsValidTimeFormat("noon"))
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID("65a1f0c2e4b0a1b2c3d4e5f6"))
	assert.False(t, IsObjectID("65a1f0c2"))
	assert.False(t, IsObjectID("zzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestCollectionRules(t *testing.T) {
	assert.True(t, In("Monday", "Sunday", "Monday"))
	assert.False(t, In("Funday", "Sunday", "Monday"))
	assert.True(t, NoDuplicates([]string{"a", "b"}))
	assert.False(t, NoDuplicates([]string{"a", "a"}))
	assert.True(t, MaxRunes("سباكة", 5))
	assert.False(t, MaxRunes("سباكة", 4))
	assert.True(t, IsURL("https://maps.example/x"))
	assert.False(t, IsURL("maps.example/x"))
}
