package natsconnection

import (
	"encoding/json"

	"github.com/RobertWHurst/trellis"
	"github.com/nats-io/nats.go"
)

type RoutesMessage struct {
	DirectoryID string                     `json:"directoryId"`
	Routes      []*trellis.RouteDescriptor `json:"routes"`
}

func (c *Connection) AnnounceRoutes(directoryID string, descriptors []*trellis.RouteDescriptor) error {
	messageBytes, err := json.Marshal(&RoutesMessage{
		DirectoryID: directoryID,
		Routes:      descriptors,
	})
	if err != nil {
		return err
	}
	return c.NatsConnection.Publish(namespace("announce"), messageBytes)
}

func (c *Connection) BindRoutesAnnounce(handler func(directoryID string, descriptors []*trellis.RouteDescriptor)) error {
	sub, err := c.NatsConnection.Subscribe(namespace("announce"), func(msg *nats.Msg) {
		routesMessage := &RoutesMessage{}
		if err := json.Unmarshal(msg.Data, routesMessage); err != nil {
			return
		}
		handler(routesMessage.DirectoryID, routesMessage.Routes)
	})
	if err != nil {
		return err
	}

	c.unbindRoutesAnnounce = func() error {
		return sub.Unsubscribe()
	}

	return nil
}

func (c *Connection) UnbindRoutesAnnounce() error {
	return c.unbindRoutesAnnounce()
}
