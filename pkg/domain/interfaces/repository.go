package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model/auth"
)

// Repository defines the interface for data persistence
type Repository interface {
	Employee() EmployeeRepository
	Task() TaskRepository
	File() FileRepository
	Department() DepartmentRepository
	Profile() ProfileRepository

	// Session methods
	PutSession(ctx context.Context, session *auth.Session) error
	GetSession(ctx context.Context, id auth.SessionID) (*auth.Session, error)
	DeleteSession(ctx context.Context, id auth.SessionID) error

	// Credential methods
	PutCredential(ctx context.Context, cred *auth.Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (*auth.Credential, error)

	Close() error
}
