package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestSlotRoundTrip(t *testing.T) {
    encoded := EncodeSlot(101, "09:00")
    assert.Equal(t, "101|09:00", encoded)

    id, timeOfDay, err := DecodeSlot(encoded)
    require.NoError(t, err)
    assert.Equal(t, int64(101), id)
    assert.Equal(t, "09:00", timeOfDay)
}

func TestDecodeSlotRejectsMalformedValues(t *testing.T) {
    for _, value := range []string{"", "101", "|09:00", "abc|09:00", "0|09:00", "101|"} {
        _, _, err := DecodeSlot(value)
        assert.Error(t, err, "value %q", value)
    }
}
