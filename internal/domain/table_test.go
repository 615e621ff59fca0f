package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, 48, catalog.Len())
	assert.Equal(t, 10, catalog.StandardCapacity())

	// Стол 19 в зале отсутствует
	_, ok := catalog.Capacity("19")
	assert.False(t, ok)

	capacity, ok := catalog.Capacity("41")
	require.True(t, ok)
	assert.Zero(t, capacity)

	capacity, ok = catalog.Capacity("5")
	require.True(t, ok)
	assert.Equal(t, 10, capacity)
}

func TestCatalog_Bookable(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, catalog.Bookable("5"))
	assert.False(t, catalog.Bookable("1"))
	assert.False(t, catalog.Bookable("99"))
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	catalog := NewCatalog([]string{"1"}, []string{"2", "3"}, 8)

	ids := catalog.StandardIDs()
	ids[0] = "mutated"

	assert.Equal(t, []string{"2", "3"}, catalog.StandardIDs())
	assert.Equal(t, []string{"1"}, catalog.ReservedIDs())
}

func TestReservation_SlotKey(t *testing.T) {
	res := &Reservation{Date: "2026-06-14", Time: "19:30", TableID: "5"}

	assert.Equal(t, "2026-06-14|19:30|5", res.SlotKey())
	assert.Equal(t, res.SlotKey(), SlotKey("2026-06-14", "19:30", "5"))
}

func TestReservationsFilter_EffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultReservationsLimit, ReservationsFilter{}.EffectiveLimit())
	assert.Equal(t, 50, ReservationsFilter{Limit: 50}.EffectiveLimit())
	assert.Equal(t, MaxReservationsLimit, ReservationsFilter{Limit: 10000}.EffectiveLimit())
}
