package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type article struct {
		Title   string `validate:"required,max=8"`
		Content string `validate:"required"`
	}

	tests := []struct {
		name    string
		value   article
		wantOK  bool
		wantSub []string
	}{
		{
			name:   "valid",
			value:  article{Title: "ok", Content: "body"},
			wantOK: true,
		},
		{
			name:    "missing title",
			value:   article{Content: "body"},
			wantSub: []string{"Title", "required"},
		},
		{
			name:    "every violation reported",
			value:   article{Title: "far too long title"},
			wantSub: []string{"Title", "max", "Content", "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateStruct(&tt.value)
			if tt.wantOK {
				assert.Empty(t, msg)
				return
			}
			assert.NotEmpty(t, msg)
			for _, sub := range tt.wantSub {
				assert.Contains(t, msg, sub)
			}
		})
	}
}
