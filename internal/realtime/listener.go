package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
)

type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// change is the envelope the notify triggers publish per row change.
type change struct {
	Op  ChangeOp        `json:"op"`
	Row json.RawMessage `json:"row"`
}

const reconnectDelay = 3 * time.Second

// listen holds a LISTEN connection on the given channel and feeds every
// notification payload to handle, reconnecting until the context is
// cancelled. A dropped connection only costs the events missed while down;
// the next hydration or echo converges the caches again.
func listen(ctx context.Context, dsn, channel string, handle func(payload []byte)) {
	for {
		if err := listenOnce(ctx, dsn, channel, handle); err != nil && ctx.Err() == nil {
			log.Printf("[Realtime] canal %s: %v; reintentando...", channel, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func listenOnce(ctx context.Context, dsn, channel string, handle func(payload []byte)) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return err
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		handle([]byte(n.Payload))
	}
}
