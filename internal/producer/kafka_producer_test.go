package producer_test

import (
	"encoding/json"
	"testing"
	"time"

	"laundry-service/internal/producer"
	"laundry-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessage(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	ev := service.OrderDeliveredEvent{
		OrderID:      uuid.New(),
		Code:         "ORD-1760691903000",
		Payable:      decimal.NewFromInt(175000),
		DeliveryTime: "10:00:00 17/10/2026",
	}

	msg, err := producer.EncodeMessage(ev.Code, producer.EventOrderDelivered, ev, at)
	require.NoError(t, err)

	assert.Equal(t, []byte(ev.Code), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, producer.EventOrderDelivered, string(msg.Headers[0].Value))

	var got struct {
		Type    string `json:"type"`
		Payload struct {
			Code    string `json:"code"`
			Payable string `json:"payable"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, producer.EventOrderDelivered, got.Type)
	assert.Equal(t, ev.Code, got.Payload.Code)
	assert.Equal(t, "175000", got.Payload.Payable)
}
