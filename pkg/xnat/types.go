package xnat

import "context"

// ObjectInfo describes one XNAT object as the REST API reports it. The
// fields are filled down to the object's own level: a subject carries no
// session label, a project neither.
type ObjectInfo struct {
	Project   string   `json:"project_id"`
	Subject   string   `json:"subject_label"`
	Session   string   `json:"session_label"`
	Resources []string `json:"resources"`
}

// Client is the data-operations surface the suite's tools consume. The
// tools stay agnostic of transport details; implementations wrap the XNAT
// REST API and tests substitute fakes.
type Client interface {
	// Projects lists the projects the authenticated user can read.
	Projects(ctx context.Context) ([]ObjectInfo, error)

	// Subjects lists the subjects of a project.
	Subjects(ctx context.Context, project string) ([]ObjectInfo, error)

	// Sessions lists the imaging sessions of a subject.
	Sessions(ctx context.Context, project, subject string) ([]ObjectInfo, error)

	// Resources lists the resource labels attached to a session.
	Resources(ctx context.Context, project, subject, session string) ([]string, error)

	// DownloadResource fetches one resource of the object into dir.
	DownloadResource(ctx context.Context, info ObjectInfo, resource, dir string) error

	// UploadResource pushes the file at path as a resource of the object.
	UploadResource(ctx context.Context, info ObjectInfo, resource, path string) error
}
