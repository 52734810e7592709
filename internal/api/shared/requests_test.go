package shared

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if s.ok {
		return nil
	}
	return errors.New("not ok")
}

type taggedRequest struct {
	Value string `validate:"required,max=14"`
}

type periodicityRequest struct {
	Periodicity string `validate:"required,periodicity"`
}

func TestValidateRequest(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.EqualError(t, ValidateRequest(selfValidating{ok: false}), "not ok")

	assert.NoError(t, ValidateRequest(&taggedRequest{Value: "2017-05"}))

	err := ValidateRequest(&taggedRequest{Value: ""})
	var validationErrors validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrors), "got %v", err)

	assert.Error(t, ValidateRequest(&taggedRequest{Value: "2017-05-W1-mon-extra"}))
}

func TestValidateRequest_Periodicity(t *testing.T) {
	t.Parallel() // Enable parallel execution

	for _, id := range []string{"day", "month_week_sat", "week_mon", "all"} {
		assert.NoError(t, ValidateRequest(&periodicityRequest{Periodicity: id}), id)
	}

	for _, id := range []string{"fortnight", "Day", "week"} {
		err := ValidateRequest(&periodicityRequest{Periodicity: id})
		var validationErrors validator.ValidationErrors
		if assert.True(t, errors.As(err, &validationErrors), "%s: got %v", id, err) {
			assert.Equal(t, "periodicity", validationErrors[0].Tag())
		}
	}
}
