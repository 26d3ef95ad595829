// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/infra/config"
	"github.com/ytakei/taskwarden/internal/infra/jsonstore"
	"github.com/ytakei/taskwarden/internal/infra/logging"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Store            domain.DocumentStore
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Logger           domain.Logger
	ConfigLoader     domain.ConfigLoader
	Config           *domain.Config
}

// New creates a new Container from the loaded configuration.
// storePath, when non-empty, overrides the configured store path.
func New(storePath string) (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}

	store := jsonstore.New(cfg.Store.Path)
	logger := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Store:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		Logger:           logger,
		ConfigLoader:     loader,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.DocumentStore, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Store:            store,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		Config:           cfg,
	}
}

// UseCase factory methods

// PlanRequestUseCase returns a new PlanRequest use case.
func (c *Container) PlanRequestUseCase() *usecase.PlanRequest {
	return usecase.NewPlanRequest(c.Store, c.Logger)
}

// GetNextTaskUseCase returns a new GetNextTask use case.
func (c *Container) GetNextTaskUseCase() *usecase.GetNextTask {
	return usecase.NewGetNextTask(c.Store)
}

// MarkTaskDoneUseCase returns a new MarkTaskDone use case.
func (c *Container) MarkTaskDoneUseCase() *usecase.MarkTaskDone {
	return usecase.NewMarkTaskDone(c.Store, c.Logger)
}

// ApproveTaskUseCase returns a new ApproveTask use case.
func (c *Container) ApproveTaskUseCase() *usecase.ApproveTask {
	return usecase.NewApproveTask(c.Store, c.Logger)
}

// ApproveRequestUseCase returns a new ApproveRequest use case.
func (c *Container) ApproveRequestUseCase() *usecase.ApproveRequest {
	return usecase.NewApproveRequest(c.Store, c.Logger)
}

// OpenTaskUseCase returns a new OpenTask use case.
func (c *Container) OpenTaskUseCase() *usecase.OpenTask {
	return usecase.NewOpenTask(c.Store)
}

// ShowRequestUseCase returns a new ShowRequest use case.
func (c *Container) ShowRequestUseCase() *usecase.ShowRequest {
	return usecase.NewShowRequest(c.Store)
}

// ListRequestsUseCase returns a new ListRequests use case.
func (c *Container) ListRequestsUseCase() *usecase.ListRequests {
	return usecase.NewListRequests(c.Store)
}

// AddTasksUseCase returns a new AddTasks use case.
func (c *Container) AddTasksUseCase() *usecase.AddTasks {
	return usecase.NewAddTasks(c.Store, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Store, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// CreateSubtasksUseCase returns a new CreateSubtasks use case.
func (c *Container) CreateSubtasksUseCase() *usecase.CreateSubtasks {
	return usecase.NewCreateSubtasks(c.Store, c.Clock, c.Logger)
}

// UpdateSubtaskUseCase returns a new UpdateSubtask use case.
func (c *Container) UpdateSubtaskUseCase() *usecase.UpdateSubtask {
	return usecase.NewUpdateSubtask(c.Store, c.Clock, c.Logger)
}

// CompleteSubtaskUseCase returns a new CompleteSubtask use case.
func (c *Container) CompleteSubtaskUseCase() *usecase.CompleteSubtask {
	return usecase.NewCompleteSubtask(c.Store, c.Clock, c.Logger)
}

// DeleteSubtaskUseCase returns a new DeleteSubtask use case.
func (c *Container) DeleteSubtaskUseCase() *usecase.DeleteSubtask {
	return usecase.NewDeleteSubtask(c.Store, c.Logger)
}

// BreakDownTaskUseCase returns a new BreakDownTask use case.
func (c *Container) BreakDownTaskUseCase() *usecase.BreakDownTask {
	return usecase.NewBreakDownTask(c.Store, c.Clock, c.Logger)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
