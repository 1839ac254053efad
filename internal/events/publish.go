package events

import "log/slog"

// Publish sends an event and logs a failure instead of returning it.
// Change notifications are best effort: a write that committed stays
// committed even when nobody hears about it.
func Publish(publisher EventPublisher, event Event) {
	if publisher == nil {
		return // Silently skip if no publisher is configured
	}

	if err := publisher.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"apiary_id", event.ApiaryID,
			"hive_id", event.HiveID,
			"error", err)
	}
}
