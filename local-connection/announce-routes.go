package localconnection

import "github.com/RobertWHurst/trellis"

func (c *Connection) AnnounceRoutes(directoryID string, descriptors []*trellis.RouteDescriptor) error {
	c.mu.Lock()
	handlers := append([]func(string, []*trellis.RouteDescriptor){}, c.routesAnnounceHandlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(directoryID, descriptors)
	}
	return nil
}

func (c *Connection) BindRoutesAnnounce(handler func(directoryID string, descriptors []*trellis.RouteDescriptor)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routesAnnounceHandlers = append(c.routesAnnounceHandlers, handler)
	return nil
}

func (c *Connection) UnbindRoutesAnnounce() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routesAnnounceHandlers = []func(string, []*trellis.RouteDescriptor){}
	return nil
}
