package slogx

import (
	"log/slog"
	"reflect"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "<nil>")
	}
	return slog.String(KeyError, err.Error())
}

// Type creates a slog.Attr describing a message type. The value is the
// package qualified type name, which is what an operator greps for.
func Type(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.String(KeyMessageType, "<nil>")
	}
	return slog.String(KeyMessageType, t.String())
}

// SubscriptionID creates a slog.Attr for a subscription identifier.
func SubscriptionID(id string) slog.Attr {
	return slog.String(KeySubscriptionID, id)
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
	// KeyError is the key used by Error.
	KeyError = "error"
	// KeyMessageType is the key used by Type.
	KeyMessageType = "message_type"
	// KeySubscriptionID is the key used by SubscriptionID.
	KeySubscriptionID = "subscription"
)

// LoggerName returns an attribute for the logger name.
//
// Parameters:
//   - name: The name of the logger.
//
// Returns:
//
//	A slog.Attr containing the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
