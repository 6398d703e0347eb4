package domain

// Manifest is a parsed romconv.yaml: settings plus the jobs to run in order.
type Manifest struct {
	Path   string
	Config Config
	Jobs   []Job
}

// WorkspaceSpec describes a directory to scaffold with a starter manifest.
type WorkspaceSpec struct {
	Root string
}
