package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrderID(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "order-1700000000123-7-1", EncodeOrderID(at, 7, 1))
	assert.Equal(t, "existing-7-1", ExistingOrderID(7, 1))
}

func TestDecodeOrderID(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    OrderRef
		ok      bool
	}{
		{name: "encoded id", orderID: "order-1700000000123-42-9", want: OrderRef{UserID: 42, CourseID: 9}, ok: true},
		{name: "extra segments ignored", orderID: "order-1-3-4-extra", want: OrderRef{UserID: 3, CourseID: 4}, ok: true},
		{name: "existing marker is too short", orderID: "existing-7-1"},
		{name: "empty", orderID: ""},
		{name: "non numeric user", orderID: "order-1-abc-4"},
		{name: "non numeric course", orderID: "order-1-3-x"},
		{name: "gateway id", orderID: "order_Nx81k2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeOrderID(tc.orderID)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderIDRoundTrip(t *testing.T) {
	id := EncodeOrderID(time.Now(), 12, 34)
	ref, ok := DecodeOrderID(id)
	require.True(t, ok)
	assert.Equal(t, OrderRef{UserID: 12, CourseID: 34}, ref)
}
