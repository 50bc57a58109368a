// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/dictionary/pkg/uuid"
)

/*
TestParse accepts only the canonical form.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"12345678-1234-1234-1234-123456789012", true},
		{"{12345678-1234-1234-1234-123456789012}", false},
		{"urn:uuid:12345678-1234-1234-1234-123456789012", false},
		{"12345678123412341234123456789012", false},
		{"tag-only-current", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, uuid.IsValid(tt.input))
		})
	}
}

/*
TestNew generates parsable, distinct ids.
*/
func TestNew(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.NotEqual(t, a, b)
	assert.True(t, uuid.IsValid(a))
}
