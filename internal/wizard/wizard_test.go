package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lushstays/staygo/internal/calendar"
	"github.com/lushstays/staygo/internal/domain"
)

var palmCove = domain.Location{Name: "Palm Cove", PricePerNight: 5000, Available: true}

func TestAdvanceGatedWithoutLocation(t *testing.T) {
	w := New()

	assert.False(t, w.CanAdvance())
	_, done := w.Advance()
	assert.False(t, done)
	assert.Equal(t, StepLocation, w.Step(), "gated advance must leave the wizard in place")
}

func TestAdvanceGatedWithoutBothDates(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	w.SelectLocation(palmCove)
	_, done := w.Advance()
	require.False(t, done)
	require.Equal(t, StepDates, w.Step())

	_, done = w.Advance()
	assert.False(t, done)
	assert.Equal(t, StepDates, w.Step())

	require.NoError(t, w.SelectCheckIn(base))
	_, done = w.Advance()
	assert.False(t, done)
	assert.Equal(t, StepDates, w.Step(), "one date is not enough")

	require.NoError(t, w.SelectCheckOut(base.AddDays(2)))
	_, done = w.Advance()
	assert.False(t, done)
	assert.Equal(t, StepTime, w.Step())
}

func TestFullRunEmitsCompletedDraft(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	w.SelectLocation(palmCove)
	_, _ = w.Advance()
	require.NoError(t, w.SelectCheckIn(base))
	require.NoError(t, w.SelectCheckOut(base.AddDays(3)))
	_, _ = w.Advance()
	require.NoError(t, w.SetTimes("15:00", "10:00"))

	draft, done := w.Advance()
	require.True(t, done)
	require.True(t, draft.Complete())
	assert.Equal(t, "Palm Cove", draft.Location.Name)
	assert.Equal(t, base, *draft.CheckIn)
	assert.Equal(t, base.AddDays(3), *draft.CheckOut)
	assert.Equal(t, domain.TimeOfDay("15:00"), draft.CheckInTime)
	assert.Equal(t, domain.TimeOfDay("10:00"), draft.CheckOutTime)
}

func TestTimesDefaultPrePopulated(t *testing.T) {
	w := New()
	draft := w.Draft()
	assert.Equal(t, domain.DefaultCheckInTime, draft.CheckInTime)
	assert.Equal(t, domain.DefaultCheckOutTime, draft.CheckOutTime)
}

func TestSetTimesRejectsUnknownOption(t *testing.T) {
	w := New()
	assert.ErrorIs(t, w.SetTimes("03:00", "11:00"), ErrInvalidTime)
	assert.ErrorIs(t, w.SetTimes("14:00", "23:30"), ErrInvalidTime)

	draft := w.Draft()
	assert.Equal(t, domain.DefaultCheckInTime, draft.CheckInTime)
	assert.Equal(t, domain.DefaultCheckOutTime, draft.CheckOutTime)
}

func TestBackKeepsEnteredData(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	w.SelectLocation(palmCove)
	_, _ = w.Advance()
	require.NoError(t, w.SelectCheckIn(base))
	require.NoError(t, w.SelectCheckOut(base.AddDays(1)))

	w.Back()
	assert.Equal(t, StepLocation, w.Step())

	draft := w.Draft()
	require.NotNil(t, draft.Location)
	require.NotNil(t, draft.CheckIn)
	require.NotNil(t, draft.CheckOut)

	w.Back()
	assert.Equal(t, StepLocation, w.Step(), "back from the first step stays put")
}

func TestCheckOutBeforeCheckInDisabled(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	require.NoError(t, w.SelectCheckIn(base))

	err := w.SelectCheckOut(base.AddDays(-1))
	assert.ErrorIs(t, err, calendar.ErrDayDisabled)
	assert.Nil(t, w.Draft().CheckOut)

	require.NoError(t, w.SelectCheckOut(base), "same-day check-out is allowed")
}

func TestLaterCheckInClearsStaleCheckOut(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	require.NoError(t, w.SelectCheckIn(base))
	require.NoError(t, w.SelectCheckOut(base.AddDays(2)))

	// moving check-in past the chosen check-out must not leave an
	// inconsistent range behind
	require.NoError(t, w.SelectCheckIn(base.AddDays(5)))

	draft := w.Draft()
	assert.Equal(t, base.AddDays(5), *draft.CheckIn)
	assert.Nil(t, draft.CheckOut)
	assert.Nil(t, w.Selector(CheckOut).Value())

	// and the check-out selector now gates on the new check-in
	assert.False(t, w.Selector(CheckOut).Selectable(base.AddDays(4)))
	assert.True(t, w.Selector(CheckOut).Selectable(base.AddDays(5)))
}

func TestEarlierCheckInKeepsCheckOut(t *testing.T) {
	base := domain.Today().AddDays(10)

	w := New()
	require.NoError(t, w.SelectCheckIn(base.AddDays(3)))
	require.NoError(t, w.SelectCheckOut(base.AddDays(5)))
	require.NoError(t, w.SelectCheckIn(base))

	draft := w.Draft()
	require.NotNil(t, draft.CheckOut)
	assert.Equal(t, base.AddDays(5), *draft.CheckOut)
}

func TestSelectorsBrowseIndependently(t *testing.T) {
	w := New()

	w.Selector(CheckIn).NextMonth()
	w.Selector(CheckIn).NextMonth()

	inY, inM := w.Selector(CheckIn).Cursor()
	outY, outM := w.Selector(CheckOut).Cursor()
	assert.NotEqual(t, [2]any{inY, inM}, [2]any{outY, outM})
}
