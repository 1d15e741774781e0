package natsconnection

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
)

type WithdrawMessage struct {
	DirectoryID string `json:"directoryId"`
}

func (c *Connection) AnnounceWithdraw(directoryID string) error {
	messageBytes, err := json.Marshal(&WithdrawMessage{
		DirectoryID: directoryID,
	})
	if err != nil {
		return err
	}
	return c.NatsConnection.Publish(namespace("withdraw"), messageBytes)
}

func (c *Connection) BindWithdrawAnnounce(handler func(directoryID string)) error {
	sub, err := c.NatsConnection.Subscribe(namespace("withdraw"), func(msg *nats.Msg) {
		withdrawMessage := &WithdrawMessage{}
		if err := json.Unmarshal(msg.Data, withdrawMessage); err != nil {
			return
		}
		handler(withdrawMessage.DirectoryID)
	})
	if err != nil {
		return err
	}

	c.unbindWithdrawAnnounce = func() error {
		return sub.Unsubscribe()
	}

	return nil
}

func (c *Connection) UnbindWithdrawAnnounce() error {
	return c.unbindWithdrawAnnounce()
}
