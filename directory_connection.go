package trellis

// DirectoryConnection carries route announcements between directories. Each
// Bind method registers a handler invoked for every matching announcement,
// including the sender's own; directories filter those out by ID.
type DirectoryConnection interface {
	AnnounceRoutes(directoryID string, descriptors []*RouteDescriptor) error
	BindRoutesAnnounce(handler func(directoryID string, descriptors []*RouteDescriptor)) error
	UnbindRoutesAnnounce() error

	AnnounceWithdraw(directoryID string) error
	BindWithdrawAnnounce(handler func(directoryID string)) error
	UnbindWithdrawAnnounce() error
}
