package pubsub

import (
	"maps"

	"blip/internal/domain/service"
)

// messageAttributes flattens an event into Pub/Sub message attributes so
// subscribers can filter on type without decoding the payload.
func messageAttributes(event *service.DomainEvent) map[string]string {
	attributes := make(map[string]string, len(event.Attributes)+3)
	maps.Copy(attributes, event.Attributes)

	attributes["event_type"] = event.Type
	attributes["subject_id"] = event.SubjectID
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
