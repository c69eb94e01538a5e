package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

// ErrAlreadyExists is returned when a uniqueness constraint is violated
var ErrAlreadyExists = interfaces.ErrAlreadyExists

type Firestore struct {
	client     *firestore.Client
	employee   *employeeRepository
	task       *taskRepository
	file       *fileRepository
	department *departmentRepository
	profile    *profileRepository
	sessions   *sessionStore
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing
// a project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.employee.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.file.collectionPrefix = prefix
		f.department.collectionPrefix = prefix
		f.profile.collectionPrefix = prefix
		f.sessions.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		employee:   newEmployeeRepository(client),
		task:       newTaskRepository(client),
		file:       newFileRepository(client),
		department: newDepartmentRepository(client),
		profile:    newProfileRepository(client),
		sessions:   newSessionStore(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Employee() interfaces.EmployeeRepository {
	return f.employee
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) File() interfaces.FileRepository {
	return f.file
}

func (f *Firestore) Department() interfaces.DepartmentRepository {
	return f.department
}

func (f *Firestore) Profile() interfaces.ProfileRepository {
	return f.profile
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func collectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
