package kernel_test

import (
	"testing"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocationID(t *testing.T) {
	t.Run("should accept positive identifiers", func(t *testing.T) {
		id, err := kernel.NewLocationID(79217262692)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(79217262692), id.Int64())
		assert.Equal(t, "79217262692", id.String())
	})

	t.Run("should reject zero and negative identifiers", func(t *testing.T) {
		for _, value := range []int64{0, -1} {
			_, err := kernel.NewLocationID(value)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.LocationID

		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseLocationID(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    int64
		wantErr error
	}{
		{name: "plain", raw: "78097875044", want: 78097875044},
		{name: "padded", raw: " 78097875044 ", want: 78097875044},
		{name: "empty", raw: "", wantErr: errs.ErrValueIsRequired},
		{name: "not a number", raw: "store", wantErr: errs.ErrValueIsInvalid},
		{name: "zero", raw: "0", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.ParseLocationID(tc.raw)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id.Int64())
		})
	}
}

func TestLocationID_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustNewLocationID(1).IsEqual(kernel.MustNewLocationID(1)))
	assert.False(t, kernel.MustNewLocationID(1).IsEqual(kernel.MustNewLocationID(2)))
}
