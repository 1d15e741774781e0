package natsconnection

import (
	"strings"

	"github.com/RobertWHurst/trellis"
	"github.com/nats-io/nats.go"
)

const subjectPrefix = "trellis.routes"

// Connection is a trellis.DirectoryConnection that publishes announcements
// as JSON on NATS subjects under trellis.routes.
type Connection struct {
	NatsConnection         *nats.Conn
	unbindRoutesAnnounce   func() error
	unbindWithdrawAnnounce func() error
}

func New(conn *nats.Conn) *Connection {
	return &Connection{
		NatsConnection:         conn,
		unbindRoutesAnnounce:   func() error { return nil },
		unbindWithdrawAnnounce: func() error { return nil },
	}
}

var _ trellis.DirectoryConnection = &Connection{}

func namespace(parts ...string) string {
	return subjectPrefix + "." + strings.Join(parts, ".")
}
