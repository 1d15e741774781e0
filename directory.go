package trellis

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory shares route tables between services. It announces the routes of
// a local table over a DirectoryConnection and keeps a table for every remote
// directory it hears from, so a gateway can find which service handles a
// request using the same matching rules the services use themselves.
type Directory struct {
	mu sync.RWMutex

	ID         string
	Connection DirectoryConnection

	table        *RouteTable
	remoteIDs    []string
	remoteTables map[string]*RouteTable
	logger       *zap.Logger
}

// NewDirectory creates a directory announcing the routes of table. The table
// may be nil for directories that only resolve.
func NewDirectory(table *RouteTable) *Directory {
	return &Directory{
		ID:           uuid.NewString(),
		table:        table,
		remoteTables: map[string]*RouteTable{},
		logger:       zap.NewNop(),
	}
}

// SetLogger sets the logger used for announcement diagnostics.
func (d *Directory) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// SetConnection binds the directory to connection and announces the local
// routes on it. A previously set connection is unbound after the local routes
// are withdrawn from it.
func (d *Directory) SetConnection(connection DirectoryConnection) error {
	d.mu.Lock()
	previousConnection := d.Connection
	d.Connection = connection
	d.mu.Unlock()

	if previousConnection != nil {
		if err := previousConnection.AnnounceWithdraw(d.ID); err != nil {
			return err
		}
		if err := previousConnection.UnbindRoutesAnnounce(); err != nil {
			return err
		}
		if err := previousConnection.UnbindWithdrawAnnounce(); err != nil {
			return err
		}
	}

	if err := connection.BindRoutesAnnounce(d.handleRoutesAnnounce); err != nil {
		return err
	}
	if err := connection.BindWithdrawAnnounce(d.handleWithdrawAnnounce); err != nil {
		return err
	}

	return d.Announce()
}

// Announce publishes the local routes. Call it again after registering more
// routes on the table.
func (d *Directory) Announce() error {
	d.mu.RLock()
	connection := d.Connection
	d.mu.RUnlock()

	if connection == nil {
		return errors.New("directory has no connection")
	}

	descriptors := []*RouteDescriptor{}
	if d.table != nil {
		descriptors = d.table.RouteDescriptors()
	}
	return connection.AnnounceRoutes(d.ID, descriptors)
}

// Close withdraws the local routes from the connection.
func (d *Directory) Close() error {
	d.mu.RLock()
	connection := d.Connection
	d.mu.RUnlock()

	if connection == nil {
		return nil
	}
	return connection.AnnounceWithdraw(d.ID)
}

// Resolve returns the ID of the remote directory whose routes match method
// and rawURL. Directories are consulted in the order they were first heard
// from.
func (d *Directory) Resolve(method, rawURL string) (string, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, remoteID := range d.remoteIDs {
		match, err := d.remoteTables[remoteID].Match(method, rawURL)
		if err != nil {
			return "", false, err
		}
		if match.Matched() {
			return remoteID, true, nil
		}
	}
	return "", false, nil
}

// RemoteDirectoryIDs returns the IDs of the known remote directories.
func (d *Directory) RemoteDirectoryIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, len(d.remoteIDs))
	copy(ids, d.remoteIDs)
	return ids
}

// RemoteRouteDescriptors returns the routes a remote directory announced.
func (d *Directory) RemoteRouteDescriptors(directoryID string) ([]*RouteDescriptor, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	table, ok := d.remoteTables[directoryID]
	if !ok {
		return nil, false
	}
	return table.RouteDescriptors(), true
}

type remoteRouteHandler struct{}

func (remoteRouteHandler) Handle(ctx *Context) {}

func (d *Directory) handleRoutesAnnounce(directoryID string, descriptors []*RouteDescriptor) {
	if directoryID == d.ID {
		return
	}

	table := NewRouteTable()
	table.SetLogger(d.logger)
	for _, descriptor := range descriptors {
		if err := table.Register(descriptor.Method, descriptor.Pattern.String(), remoteRouteHandler{}); err != nil {
			d.logger.Warn("dropped announced route",
				zap.String("directoryId", directoryID),
				zap.String("route", descriptor.String()),
				zap.Error(err),
			)
		}
	}

	d.mu.Lock()
	_, known := d.remoteTables[directoryID]
	if !known {
		d.remoteIDs = append(d.remoteIDs, directoryID)
	}
	d.remoteTables[directoryID] = table
	d.mu.Unlock()

	d.logger.Debug("received route announcement",
		zap.String("directoryId", directoryID),
		zap.Int("routes", len(descriptors)),
	)

	// A directory we have not heard from before has not heard from us either.
	if !known {
		if err := d.Announce(); err != nil {
			d.logger.Error("failed to answer route announcement",
				zap.String("directoryId", directoryID),
				zap.Error(err),
			)
		}
	}
}

func (d *Directory) handleWithdrawAnnounce(directoryID string) {
	if directoryID == d.ID {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.remoteTables[directoryID]; !ok {
		return
	}
	delete(d.remoteTables, directoryID)
	for i, remoteID := range d.remoteIDs {
		if remoteID == directoryID {
			d.remoteIDs = append(d.remoteIDs[:i], d.remoteIDs[i+1:]...)
			break
		}
	}

	d.logger.Debug("remote directory withdrew its routes", zap.String("directoryId", directoryID))
}
