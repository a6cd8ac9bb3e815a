package journey

// Channel identifies a marketing touchpoint category.
// Valid ids are non-negative; Missing marks an absent touch.
type Channel int

// Missing is the "no touch" sentinel. It never equals a valid channel id.
const Missing Channel = -1

// Valid reports whether c is a real channel id (not Missing, not negative).
func (c Channel) Valid() bool { return c >= 0 }

// Table is a rectangular users × width grid of channel touches.
//   - users is the row count (> 0).
//   - width is the fixed journey length shared by every row (> 0).
//   - cells holds users*width entries in row-major order (offset = u*width + p).
type Table struct {
	users int
	width int
	cells []Channel
}
