package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"tasklog.dev/backend/internal/model/types"
	"tasklog.dev/backend/internal/pkg/apperr"
)

func violations(t *testing.T, err error) []*ErrorResponse {
	t.Helper()
	e, ok := apperr.From(err)
	require.True(t, ok)
	require.NotNil(t, e.Extras)
	v, ok := (*e.Extras)["violations"].([]*ErrorResponse)
	require.True(t, ok)
	return v
}

func TestValidStructReportsJSONNames(t *testing.T) {
	err := ValidStruct(&types.CreateTaskRequest{})
	require.ErrorIs(t, err, apperr.ErrInvalidReq)

	v := violations(t, err)
	require.Len(t, v, 1)
	assert.Equal(t, "name", v[0].Field)
	assert.Equal(t, "required", v[0].Violation)
	assert.NotEmpty(t, v[0].Message)
}

func TestValidStructNullInt(t *testing.T) {
	err := ValidStruct(&types.ManualActivityRequest{TaskID: 1, DurationMinutes: null.IntFrom(-5)})
	v := violations(t, err)
	require.Len(t, v, 1)
	assert.Equal(t, "duration_minutes", v[0].Field)
	assert.Equal(t, "min", v[0].Violation)

	assert.NoError(t, ValidStruct(&types.ManualActivityRequest{TaskID: 1}))
	assert.NoError(t, ValidStruct(&types.ManualActivityRequest{TaskID: 1, DurationMinutes: null.IntFrom(0)}))
}

func TestValidStructQueryNames(t *testing.T) {
	v := violations(t, ValidStruct(&types.DaysQuery{Year: 2024, Month: 13}))
	require.Len(t, v, 1)
	assert.Equal(t, "month", v[0].Field)
}
