package clock

// Field identifies one column of the display time.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldPeriod
)

var fields = []Field{FieldHours, FieldMinutes, FieldPeriod}

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldPeriod:
		return "period"
	default:
		return "unknown"
	}
}

// Next returns the column to the right of f, wrapping to hours.
func (f Field) Next() Field {
	return fields[(int(f)+1)%len(fields)]
}

// Prev returns the column to the left of f, wrapping to period.
func (f Field) Prev() Field {
	return fields[(int(f)+len(fields)-1)%len(fields)]
}

// Direction is the way a Step moves a column.
type Direction int

const (
	Increment Direction = iota
	Decrement
)

func (d Direction) String() string {
	if d == Decrement {
		return "decrement"
	}
	return "increment"
}

// Step returns t with field f moved one unit in direction d.
// Hours wrap within 1..12 and minutes within 0..59; the period toggles in
// either direction. t itself is never modified.
func Step(t Time, f Field, d Direction) Time {
	switch f {
	case FieldHours:
		if d == Increment {
			t.Hours = t.Hours%12 + 1
		} else {
			t.Hours = (t.Hours+10)%12 + 1
		}
	case FieldMinutes:
		if d == Increment {
			t.Minutes = (t.Minutes + 1) % 60
		} else {
			t.Minutes = (t.Minutes + 59) % 60
		}
	case FieldPeriod:
		t.Period = t.Period.Toggle()
	}
	return t
}
