package bootstrap

import (
	"context"
	"fmt"
	"log"

	"exec-workspace-be/internal/config"
	"exec-workspace-be/internal/controller"
	"exec-workspace-be/internal/pkg/logger"
	"exec-workspace-be/internal/repository/unitofwork"
	"exec-workspace-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ObjectController     controller.IExecObjectController
	NoteController       controller.INoteController
	TagController        controller.ITagController
	ActionItemController controller.IActionItemController
	FolderController     controller.IFolderNodeController
	GoalPeriodController controller.IGoalPeriodController
	SearchController     controller.ISearchController
	HealthController     controller.IHealthController

	// Background services, run by main
	ActivityConsumer service.IActivityConsumer

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. The single workspace is
// resolved (or created) here so every service downstream carries its id
// instead of re-querying per request.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	workspaceService := service.NewWorkspaceService(uowFactory, cfg.App.WorkspaceName)
	workspace, err := workspaceService.GetDefault(context.Background())
	if err != nil {
		return nil, fmt.Errorf("resolve default workspace: %w", err)
	}
	log.Printf("[INFO] Using workspace %q (%s)", workspace.Name, workspace.Id)

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	activityPublisher := service.NewActivityPublisher(pubSub, cfg.App.ActivityTopic, sysLogger)
	activityConsumer := service.NewActivityConsumer(pubSub, cfg.App.ActivityTopic, sysLogger)

	// Services
	objectService := service.NewExecObjectService(uowFactory, workspace.Id, activityPublisher)
	noteService := service.NewNoteService(uowFactory, workspace.Id, activityPublisher)
	tagService := service.NewTagService(uowFactory, workspace.Id)
	actionItemService := service.NewActionItemService(uowFactory, workspace.Id, activityPublisher)
	folderService := service.NewFolderNodeService(uowFactory, workspace.Id)
	goalPeriodService := service.NewGoalPeriodService(uowFactory, workspace.Id)
	searchService := service.NewSearchService(uowFactory, workspace.Id)

	return &Container{
		ObjectController:     controller.NewExecObjectController(objectService),
		NoteController:       controller.NewNoteController(noteService),
		TagController:        controller.NewTagController(tagService),
		ActionItemController: controller.NewActionItemController(actionItemService),
		FolderController:     controller.NewFolderNodeController(folderService),
		GoalPeriodController: controller.NewGoalPeriodController(goalPeriodService),
		SearchController:     controller.NewSearchController(searchService),
		HealthController:     controller.NewHealthController(db),
		ActivityConsumer:     activityConsumer,
		Logger:               sysLogger,
	}, nil
}
