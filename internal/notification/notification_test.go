package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerNotifierSend(t *testing.T) {
	var buf bytes.Buffer
	n := NewLoggerNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := n.Send(context.Background(), Message{Kind: KindPurchaseDeclined, CustomerCode: "C1", Body: "DECLINE"})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "notification", entry["msg"])
	require.Equal(t, KindPurchaseDeclined, entry["kind"])
	require.Equal(t, "C1", entry["customer_code"])
}

func TestLoggerNotifierNil(t *testing.T) {
	var n *LoggerNotifier
	require.NoError(t, n.Send(context.Background(), Message{}))
}
