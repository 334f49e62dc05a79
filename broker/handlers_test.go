package broker

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingHandler(t *testing.T) {
	t.Run("logs messages as json", func(t *testing.T) {
		var buf bytes.Buffer
		lg := slog.New(slog.NewTextHandler(&buf, nil))

		b := quietBroker[numMessage]()
		_, err := b.Subscribe(LoggingHandler[numMessage](lg))
		require.NoError(t, err)

		require.NoError(t, b.Publish(numMessage{Value: 42}))
		out := buf.String()
		assert.Contains(t, out, "msg=message")
		assert.Contains(t, out, "message_type=broker.numMessage")
		assert.Contains(t, out, `\"value\":42`)
	})

	t.Run("reports unencodable messages", func(t *testing.T) {
		h := LoggingHandler[chan int](slog.New(slog.NewTextHandler(io.Discard, nil)))
		err := h.Handle(make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal chan int")
	})

	t.Run("defaults the logger", func(t *testing.T) {
		h := LoggingHandler[numMessage](nil)
		require.NotNil(t, h)
	})
}

func TestCompose(t *testing.T) {
	boom := errors.New("boom")
	var calls []string

	h := Compose[numMessage](
		Action[numMessage](func(numMessage) { calls = append(calls, "a") }),
		nil,
		HandlerFunc[numMessage](func(numMessage) error {
			calls = append(calls, "b")
			return boom
		}),
		Action[numMessage](func(numMessage) { calls = append(calls, "c") }),
	)

	err := h.Handle(numMessage{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	b := quietBroker[numMessage]()
	_, err = b.Subscribe(Compose[numMessage]())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
