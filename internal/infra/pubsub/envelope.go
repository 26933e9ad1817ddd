package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"myetician/internal/domain/service"
	"myetician/internal/errors"

	"github.com/google/uuid"
)

// AttrRequestID carries the originating request ID across the topic.
const AttrRequestID = "request_id"

// PushMessage is the body Pub/Sub posts to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// newPushMessage wraps an event the way a push subscription would deliver it.
func newPushMessage(event *service.LogEvent, subscription string, now time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode log event")
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the log event carried by a push message.
func DecodeEvent(msg *PushMessage) (*service.LogEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.LogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a log event")
	}
	if event.Type == "" || event.UserID == "" {
		return nil, errors.New("log event needs a type and a user")
	}

	return &event, nil
}

// eventAttributes lets subscribers filter without decoding the payload.
func eventAttributes(event *service.LogEvent) map[string]string {
	attributes := map[string]string{
		"type":    string(event.Type),
		"user_id": event.UserID,
	}
	if event.Date != "" {
		attributes["date"] = event.Date
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
