package localconnection

func (c *Connection) AnnounceWithdraw(directoryID string) error {
	c.mu.Lock()
	handlers := append([]func(string){}, c.withdrawHandlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(directoryID)
	}
	return nil
}

func (c *Connection) BindWithdrawAnnounce(handler func(directoryID string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.withdrawHandlers = append(c.withdrawHandlers, handler)
	return nil
}

func (c *Connection) UnbindWithdrawAnnounce() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.withdrawHandlers = []func(string){}
	return nil
}
