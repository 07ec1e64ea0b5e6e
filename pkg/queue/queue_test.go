package queue_test

import (
	"testing"

	"github.com/yeisme/labvault/pkg/queue"
)

func TestWatermillMessageRoundTrip(t *testing.T) {
	payload := queue.EntityEventPayload{
		Entity: queue.EntityRef{EntityType: "chemical", EntityID: 7, Display: "A7 Ethanol"},
		Actor:  "tester@example.com",
	}

	msg, err := queue.NewWatermillMessage(queue.TopicEntityCreated, payload,
		queue.WithProducer("labvault"), queue.WithTraceID("trace-1"))
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.Metadata.Get("topic") != queue.TopicEntityCreated {
		t.Errorf("topic metadata = %q", msg.Metadata.Get("topic"))
	}

	if msg.Metadata.Get("producer") != "labvault" || msg.Metadata.Get("trace_id") != "trace-1" {
		t.Errorf("metadata = %v", msg.Metadata)
	}

	env, err := queue.ParseWatermillMessage[queue.EntityEventPayload](msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if env.Header.Topic != queue.TopicEntityCreated || env.Header.Version != queue.PayloadVersionV1 {
		t.Errorf("header = %+v", env.Header)
	}

	if env.Payload.Entity.EntityID != 7 || env.Payload.Entity.Display != "A7 Ethanol" {
		t.Errorf("payload = %+v", env.Payload)
	}
}
