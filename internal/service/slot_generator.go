package service

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/clock"
)

var ErrInvalidSlotTemplate = errors.New("invalid slot template")

type slotWindow struct {
	start time.Time
	end   time.Time
}

// SlotTemplate is the daily working-hours layout from which time slots are
// cut, e.g. "09:00-12:00,14:00-16:00" in 30 minute steps.
type SlotTemplate struct {
	windows []slotWindow
	step    time.Duration
}

// ParseSlotTemplate parses comma-separated "HH:MM-HH:MM" windows.
// Windows must be ordered, non-overlapping and at least one step long.
func ParseSlotTemplate(raw string, step time.Duration) (*SlotTemplate, error) {
	if step <= 0 || step%time.Minute != 0 {
		return nil, fmt.Errorf("%w: step must be a positive whole number of minutes", ErrInvalidSlotTemplate)
	}

	tpl := &SlotTemplate{step: step}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		from, to, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTemplate, part)
		}
		start, err := clock.ParseTime(from)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTemplate, part)
		}
		end, err := clock.ParseTime(to)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlotTemplate, part)
		}
		if end.Sub(start) < step {
			return nil, fmt.Errorf("%w: window %q is shorter than one slot", ErrInvalidSlotTemplate, part)
		}
		if n := len(tpl.windows); n > 0 && start.Before(tpl.windows[n-1].end) {
			return nil, fmt.Errorf("%w: window %q overlaps the previous one", ErrInvalidSlotTemplate, part)
		}
		tpl.windows = append(tpl.windows, slotWindow{start: start, end: end})
	}

	if len(tpl.windows) == 0 {
		return nil, fmt.Errorf("%w: no windows", ErrInvalidSlotTemplate)
	}
	return tpl, nil
}

// DefaultSlotTemplate is the hospital's standard day.
func DefaultSlotTemplate() *SlotTemplate {
	tpl, err := ParseSlotTemplate("09:00-12:00,14:00-16:00", 30*time.Minute)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Generate yields the template's slots in order, numbered from ts-0. occupied reports whether a
// slot starting at the given "HH:MM" is taken; a nil occupied marks every
// slot available. The sequence is finite and can be ranged over repeatedly.
func (t *SlotTemplate) Generate(occupied func(startTime string) bool) iter.Seq[entity.TimeSlot] {
	return func(yield func(entity.TimeSlot) bool) {
		index := 0
		for _, w := range t.windows {
			for start := w.start; !start.Add(t.step).After(w.end); start = start.Add(t.step) {
				startTime := start.Format(clock.TimeLayout)
				slot := entity.TimeSlot{
					ID:          fmt.Sprintf("ts-%d", index),
					StartTime:   startTime,
					EndTime:     start.Add(t.step).Format(clock.TimeLayout),
					IsAvailable: occupied == nil || !occupied(startTime),
				}
				if !yield(slot) {
					return
				}
				index++
			}
		}
	}
}

// Contains reports whether start/end ("HH:MM") is exactly one template slot.
func (t *SlotTemplate) Contains(startTime, endTime string) bool {
	for slot := range t.Generate(nil) {
		if slot.StartTime == startTime {
			return slot.EndTime == endTime
		}
	}
	return false
}

// Size returns the number of slots in a day.
func (t *SlotTemplate) Size() int {
	n := 0
	for range t.Generate(nil) {
		n++
	}
	return n
}
