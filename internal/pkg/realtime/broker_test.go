package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

func msg(event string) models.WSMessage {
	return models.WSMessage{Event: event, Data: json.RawMessage(`{}`)}
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	broker := NewBroker()

	var order []string
	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		order = append(order, "first")
	})
	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		order = append(order, "second")
	})
	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		order = append(order, "third")
	})

	broker.Publish(msg("surfer_count_update"))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSubscribersOnlyReceiveMatchingEvents(t *testing.T) {
	broker := NewBroker()

	var counts, statuses, all int
	broker.Subscribe("surfer_count_update", func(models.WSMessage) { counts++ })
	broker.Subscribe("checkin_status_change", func(models.WSMessage) { statuses++ })
	broker.Subscribe(constants.EventWildcard, func(models.WSMessage) { all++ })

	broker.Publish(msg("surfer_count_update"))
	broker.Publish(msg("surfer_count_update"))
	broker.Publish(msg("checkin_status_change"))

	assert.Equal(t, 2, counts)
	assert.Equal(t, 1, statuses)
	assert.Equal(t, 3, all)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	broker := NewBroker()

	var calls int
	unsubscribe := broker.Subscribe("surfer_count_update", func(models.WSMessage) { calls++ })

	broker.Publish(msg("surfer_count_update"))
	unsubscribe()
	broker.Publish(msg("surfer_count_update"))

	assert.Equal(t, 1, calls)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestUnsubscribeDuringDeliverySkipsRemovedSubscriber(t *testing.T) {
	broker := NewBroker()

	var secondCalled bool
	var unsubscribeSecond func()

	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		// The first subscriber removes the second mid-publish; the
		// second must not see this message.
		unsubscribeSecond()
	})
	unsubscribeSecond = broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		secondCalled = true
	})

	broker.Publish(msg("surfer_count_update"))

	assert.False(t, secondCalled)
}

func TestSubscriberPanicDoesNotStopDelivery(t *testing.T) {
	broker := NewBroker()

	var afterPanic bool
	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		panic("subscriber bug")
	})
	broker.Subscribe("surfer_count_update", func(models.WSMessage) {
		afterPanic = true
	})

	assert.NotPanics(t, func() {
		broker.Publish(msg("surfer_count_update"))
	})
	assert.True(t, afterPanic)
}
