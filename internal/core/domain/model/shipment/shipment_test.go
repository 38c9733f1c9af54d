package shipment_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	waybillDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	t.Run("creates_shipment", func(t *testing.T) {
		s, err := shipment.NewShipment("WB-77", waybillDate, "fragile", 5, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "WB-77", s.WaybillNum())
		assert.Equal(t, waybillDate, s.WaybillDate())
		assert.Equal(t, uint64(5), s.AuthorID())
		assert.Equal(t, now, s.CreatedAt())
		assert.Zero(t, s.ID())
	})

	t.Run("waybill_num_is_required", func(t *testing.T) {
		_, err := shipment.NewShipment("", waybillDate, "", 5, now)
		require.ErrorIs(t, err, shipment.ErrWaybillNumIsRequired)
	})

	t.Run("waybill_date_is_required", func(t *testing.T) {
		_, err := shipment.NewShipment("WB-77", time.Time{}, "", 5, now)
		require.ErrorIs(t, err, shipment.ErrWaybillDateIsRequired)
	})

	t.Run("author_is_required", func(t *testing.T) {
		_, err := shipment.NewShipment("WB-77", waybillDate, "", 0, now)
		require.ErrorIs(t, err, shipment.ErrAuthorIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var s shipment.Shipment
		require.Error(t, s.Validate())
	})
}

func TestShipment_AssignID(t *testing.T) {
	s, err := shipment.NewShipment("WB-77", time.Now(), "", 5, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.AssignID(3))
	require.ErrorIs(t, s.AssignID(4), shipment.ErrIDAlreadyAssigned)
	assert.Equal(t, uint64(3), s.ID())
}
