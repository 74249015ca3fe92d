package component

import "time"

// TriggerMode selects what advances the dread script
type TriggerMode uint8

const (
	TriggerTime     TriggerMode = iota // fixed wall-clock interval while playing
	TriggerDistance                    // fixed cumulative distance walked
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerTime:
		return "time"
	case TriggerDistance:
		return "distance"
	}
	return "unknown"
}

// DreadLine is one scripted message and the sanity it drains
type DreadLine struct {
	Text  string
	Drain float32
}

// DreadScript is the immutable ordered message list and its trigger rule
type DreadScript struct {
	lines []DreadLine

	Mode         TriggerMode
	Interval     time.Duration // TriggerTime period
	Distance     float32       // TriggerDistance step
	InitialDelay time.Duration // delay after play begins before arming
}

// NewDreadScript copies lines so later edits to the source slice cannot reach the script
func NewDreadScript(lines []DreadLine, mode TriggerMode, interval time.Duration, distance float32, initialDelay time.Duration) *DreadScript {
	return &DreadScript{
		lines:        append([]DreadLine(nil), lines...),
		Mode:         mode,
		Interval:     interval,
		Distance:     distance,
		InitialDelay: initialDelay,
	}
}

// Len returns the number of lines
func (s *DreadScript) Len() int {
	return len(s.lines)
}

// Line returns line i
func (s *DreadScript) Line(i int) DreadLine {
	return s.lines[i]
}

// DreadCursor is the monotonic position in a script
type DreadCursor struct {
	next int
}

// Next returns the index of the next line to fire
func (c *DreadCursor) Next() int {
	return c.next
}

// Take returns the next line and advances, or false once the script is exhausted
func (c *DreadCursor) Take(s *DreadScript) (DreadLine, int, bool) {
	if c.next >= s.Len() {
		return DreadLine{}, c.next, false
	}
	i := c.next
	c.next++
	return s.lines[i], i, true
}

// Exhausted reports whether every line has fired
func (c *DreadCursor) Exhausted(s *DreadScript) bool {
	return c.next >= s.Len()
}
