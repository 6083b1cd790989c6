package ports

// WorkspacePort discovers declaration manifests within source roots.
type WorkspacePort interface {
	FindManifests(root string) ([]string, error)
}
