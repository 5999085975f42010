package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var digits = regexp.MustCompile(`^[0-9]+$`)

func TestRequired(t *testing.T) {
	assert.Equal(t, "desc", Required("desc")(""))
	assert.Empty(t, Required("desc")("value"))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, "desc", Match(digits, "desc")("value"))
	assert.Empty(t, Match(digits, "desc")("123"))
}

func TestTag(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		value string
		want  string
	}{
		{name: "within max", tag: "max=5", value: "abc", want: ""},
		{name: "over max", tag: "max=5", value: "abcdef", want: "invalid"},
		{name: "valid e164", tag: "e164", value: "+14155552671", want: ""},
		{name: "invalid e164", tag: "e164", value: "555-2671", want: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tag(tt.tag, "invalid")(tt.value))
		})
	}
}

func TestList(t *testing.T) {
	t.Run("single validator without value", func(t *testing.T) {
		assert.Equal(t, "Phone number is required", List(Required("Phone number is required"))(""))
	})

	t.Run("single validator with value", func(t *testing.T) {
		assert.Empty(t, List(Required("Phone number is required"))("value"))
	})

	t.Run("first failure wins", func(t *testing.T) {
		v := List(Required("R"), Match(digits, "M"))

		assert.Equal(t, "R", v(""))
		assert.Equal(t, "M", v("abc"))
		assert.Empty(t, v("123"))
	})

	t.Run("short-circuits after first failure", func(t *testing.T) {
		called := false
		spy := func(string) string {
			called = true
			return ""
		}

		assert.Equal(t, "R", List(Required("R"), spy)(""))
		assert.False(t, called)
	})

	t.Run("empty list passes", func(t *testing.T) {
		assert.Empty(t, List()("anything"))
	})
}
