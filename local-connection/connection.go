package localconnection

import (
	"sync"

	"github.com/RobertWHurst/trellis"
)

// Connection is an in-memory trellis.DirectoryConnection. Every directory
// bound to the same Connection receives every announcement, synchronously.
// It suits tests and services that run several directories in one process.
// The Unbind methods remove the handlers of every bound directory.
type Connection struct {
	mu                     sync.Mutex
	routesAnnounceHandlers []func(string, []*trellis.RouteDescriptor)
	withdrawHandlers       []func(string)
}

func New() *Connection {
	return &Connection{
		routesAnnounceHandlers: []func(string, []*trellis.RouteDescriptor){},
		withdrawHandlers:       []func(string){},
	}
}

var _ trellis.DirectoryConnection = &Connection{}
