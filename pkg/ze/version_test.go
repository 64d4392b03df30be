package ze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIVersion(t *testing.T) {
	v := MakeVersion(1, 5)
	assert.Equal(t, APIVersion1_5, v)
	assert.Equal(t, uint16(1), v.Major())
	assert.Equal(t, uint16(5), v.Minor())
	assert.Equal(t, "1.5", v.String())
	assert.Less(t, APIVersion1_0, APIVersion1_12)
}

func TestParseAPIVersion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := ParseAPIVersion(" 1.8 ")
		require.NoError(t, err)
		assert.Equal(t, APIVersion1_8, v)
	})

	for _, in := range []string{"", "1", "1.x", "a.1", "70000.1"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseAPIVersion(in)
			assert.Error(t, err)
		})
	}
}
