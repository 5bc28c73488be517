package booking

import (
    "fmt"
    "strconv"
    "strings"
)

// Slot values bind the joint (showtime id, time) choice to a single UI
// form value, encoded as "<showtimeId>|<time>".  The two halves are one
// choice: they are decoded together and applied through SetTimeSlot so
// they can never drift apart.

// EncodeSlot renders the joint slot value for UI binding.
func EncodeSlot(showtimeID int64, timeOfDay string) string {
    return fmt.Sprintf("%d|%s", showtimeID, timeOfDay)
}

// DecodeSlot splits an encoded slot value back into its id and time.
func DecodeSlot(value string) (showtimeID int64, timeOfDay string, err error) {
    parts := strings.SplitN(value, "|", 2)
    if len(parts) != 2 || parts[1] == "" {
        return 0, "", fmt.Errorf("invalid slot value %q", value)
    }
    id, err := strconv.ParseInt(parts[0], 10, 64)
    if err != nil || id == 0 {
        return 0, "", fmt.Errorf("invalid showtime id in slot value %q", value)
    }
    return id, parts[1], nil
}
