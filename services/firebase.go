package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"masterboxer.com/project-micro-social/logging"
)

// Notifier tells a user something happened to their account. Delivery is
// best effort and never fails the action that triggered it.
type Notifier interface {
	Notify(username, title, body string, data map[string]string) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(string, string, string, map[string]string) error { return nil }

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FirebaseNotifier publishes to one FCM topic per user, so devices only need
// to subscribe to TopicFor(username).
type FirebaseNotifier struct {
	client messageSender
}

func NewFirebaseNotifier(credentialsPath string) (*FirebaseNotifier, error) {
	ctx := context.Background()
	log := logging.Log.WithField("component", "fcm")

	log.Infof("initializing firebase with credentials: %s", credentialsPath)

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		log.WithError(err).Error("failed to init firebase app")
		return nil, errors.Wrap(err, "init firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.WithError(err).Error("failed to get messaging client")
		return nil, errors.Wrap(err, "get messaging client")
	}

	log.Info("firebase messaging client initialized")
	return &FirebaseNotifier{client: client}, nil
}

func (n *FirebaseNotifier) Notify(username, title, body string, data map[string]string) error {
	if len(body) > 100 {
		cut := 97
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Topic: TopicFor(username),
	}

	response, err := n.client.Send(context.Background(), message)
	if err != nil {
		return errors.Wrapf(err, "send notification to %q", username)
	}

	logging.Log.WithField("component", "fcm").Debugf("sent message %s to %s", response, message.Topic)
	return nil
}

// TopicFor maps a username onto the FCM topic alphabet [a-zA-Z0-9-_.~%].
func TopicFor(username string) string {
	var b strings.Builder
	b.WriteString("user-")
	for i := 0; i < len(username); i++ {
		c := username[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
