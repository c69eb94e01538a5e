package usecase

import (
	"crypto/rand"
	"time"

	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/service/storage"
)

type UseCases struct {
	repo       interfaces.Repository
	storageSvc storage.Client
	jwtSecret  []byte
	sessionTTL time.Duration
	hook       TransitionHook

	Auth       *AuthUseCase
	Employee   *EmployeeUseCase
	Task       *TaskUseCase
	Department *DepartmentUseCase
	File       *FileUseCase
	Dashboard  *DashboardUseCase
}

type Option func(*UseCases)

// WithStorage sets the object storage backend for file payloads
func WithStorage(client storage.Client) Option {
	return func(uc *UseCases) {
		uc.storageSvc = client
	}
}

// WithJWTSecret sets the HS256 key for session cookies. Without it an
// ephemeral key is generated and sessions do not survive a restart.
func WithJWTSecret(secret []byte) Option {
	return func(uc *UseCases) {
		uc.jwtSecret = secret
	}
}

// WithSessionTTL overrides the default session lifetime
func WithSessionTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.sessionTTL = ttl
	}
}

// WithTransitionHook registers a hook invoked asynchronously after every
// accepted task transition
func WithTransitionHook(hook TransitionHook) Option {
	return func(uc *UseCases) {
		uc.hook = hook
	}
}

const defaultSessionTTL = 24 * time.Hour

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		storageSvc: storage.NewMemory(),
		sessionTTL: defaultSessionTTL,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if len(uc.jwtSecret) == 0 {
		uc.jwtSecret = make([]byte, 32)
		_, _ = rand.Read(uc.jwtSecret)
	}

	uc.Auth = NewAuthUseCase(repo, uc.jwtSecret, uc.sessionTTL)
	uc.Employee = NewEmployeeUseCase(repo)
	uc.Task = NewTaskUseCase(repo, uc.hook)
	uc.Department = NewDepartmentUseCase(repo)
	uc.File = NewFileUseCase(repo, uc.storageSvc)
	uc.Dashboard = NewDashboardUseCase(repo)

	return uc
}
