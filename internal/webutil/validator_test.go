package webutil

import (
	"errors"
	"testing"

	"flashcard_keep/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_SaveCardRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       model.SaveCardRequest
		wantTag   string
		wantField string
	}{
		{name: "EN only", req: model.SaveCardRequest{EN: "apple"}},
		{name: "legacy chinese only", req: model.SaveCardRequest{Chinese: "蘋果"}},
		{name: "blank EN falls back to word", req: model.SaveCardRequest{EN: " ", Word: "apple"}},
		{name: "blank JP and translation fall back to chinese", req: model.SaveCardRequest{JP: "\t", Translation: " ", Chinese: "蘋果"}},
		{name: "with date and time", req: model.SaveCardRequest{Word: "apple", Date: "2026-10-16", Time: "23:59:59"}},
		{name: "all blank", req: model.SaveCardRequest{Word: " ", CH: "\t"}, wantTag: cardTextTag, wantField: "word"},
		{name: "bad date", req: model.SaveCardRequest{EN: "apple", Date: "2026/10/16"}, wantTag: "datetime", wantField: "date"},
		{name: "bad time", req: model.SaveCardRequest{EN: "apple", Time: "25:00"}, wantTag: "datetime", wantField: "time"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validator.Struct(tc.req)
			if tc.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.wantTag, verrs[0].Tag())
			assert.Equal(t, tc.wantField, verrs[0].Field())
			assert.NotEmpty(t, verrs[0].Translate(Trans))
		})
	}
}

func TestValidator_Translations(t *testing.T) {
	err := Validator.Struct(model.SaveCardRequest{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "at least one of word, sentence or translation must be filled in", verrs[0].Translate(Trans))

	err = Validator.Struct(model.SaveCardRequest{EN: "apple", Date: "x"})
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "date is not in the expected format", verrs[0].Translate(Trans))
}
