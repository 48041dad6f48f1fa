package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		start Time
		field Field
		dir   Direction
		want  Time
	}{
		{"hours up", Time{3, 10, AM}, FieldHours, Increment, Time{4, 10, AM}},
		{"hours up wraps 12 to 1 without period change", Time{12, 7, AM}, FieldHours, Increment, Time{1, 7, AM}},
		{"hours up 11 to 12 keeps period", Time{11, 0, PM}, FieldHours, Increment, Time{12, 0, PM}},
		{"hours down", Time{3, 10, AM}, FieldHours, Decrement, Time{2, 10, AM}},
		{"hours down wraps 1 to 12", Time{1, 10, PM}, FieldHours, Decrement, Time{12, 10, PM}},
		{"minutes up", Time{3, 10, AM}, FieldMinutes, Increment, Time{3, 11, AM}},
		{"minutes up wraps 59 to 0", Time{3, 59, AM}, FieldMinutes, Increment, Time{3, 0, AM}},
		{"minutes down", Time{3, 10, AM}, FieldMinutes, Decrement, Time{3, 9, AM}},
		{"minutes down wraps 0 to 59", Time{3, 0, AM}, FieldMinutes, Decrement, Time{3, 59, AM}},
		{"period up toggles", Time{3, 0, AM}, FieldPeriod, Increment, Time{3, 0, PM}},
		{"period down toggles", Time{3, 0, PM}, FieldPeriod, Decrement, Time{3, 0, AM}},
		{"unknown field is a no-op", Time{3, 0, PM}, Field(9), Increment, Time{3, 0, PM}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start
			got := Step(tt.start, tt.field, tt.dir)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, start, tt.start, "Step must not modify its input")
		})
	}
}

func TestStepCycles(t *testing.T) {
	cycles := []struct {
		field Field
		order int
	}{
		{FieldHours, 12},
		{FieldMinutes, 60},
		{FieldPeriod, 2},
	}

	for _, c := range cycles {
		for _, dir := range []Direction{Increment, Decrement} {
			t.Run(c.field.String()+" "+dir.String(), func(t *testing.T) {
				for h := 1; h <= 12; h++ {
					for _, m := range []int{0, 1, 30, 59} {
						start := Time{Hours: h, Minutes: m, Period: PM}
						cur := start
						for i := 0; i < c.order; i++ {
							cur = Step(cur, c.field, dir)
							assert.True(t, cur.Valid(), "step produced out-of-range value %+v", cur)
							if i < c.order-1 {
								assert.NotEqual(t, start, cur)
							}
						}
						assert.Equal(t, start, cur)
					}
				}
			})
		}
	}
}

func TestFieldNavigation(t *testing.T) {
	assert.Equal(t, FieldMinutes, FieldHours.Next())
	assert.Equal(t, FieldPeriod, FieldMinutes.Next())
	assert.Equal(t, FieldHours, FieldPeriod.Next())
	assert.Equal(t, FieldPeriod, FieldHours.Prev())
	assert.Equal(t, FieldHours, FieldMinutes.Prev())
	assert.Equal(t, "unknown", Field(7).String())
}
