package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-tasks/internal/cache"
	"service-tasks/internal/controllers"
	"service-tasks/internal/listeners"
	"service-tasks/internal/repositories"
	"service-tasks/internal/services"
	"service-tasks/internal/workflow"
	"service-tasks/pkg/config"
	"service-tasks/pkg/eventbus"
	"service-tasks/pkg/filestorage"
	"service-tasks/pkg/middleware"
	"service-tasks/pkg/service"
	"service-tasks/pkg/telegram"
	"service-tasks/pkg/websocket"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Task     *zap.Logger
	Approval *zap.Logger
	Files    *zap.Logger
}

// Deps - внешние зависимости, созданные в main.
type Deps struct {
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Hub    *websocket.Hub
	Bus    *eventbus.Bus
	JWT    service.JWTService
	Config *config.Config
}

func InitRouter(e *echo.Echo, deps Deps, loggers *Loggers) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")
	cfg := deps.Config

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWT, loggers.Auth)
	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Storage.UploadsDir)
	if err != nil {
		loggers.Main.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}
	rules, err := workflow.LoadAccessRules(cfg.AccessRulesFile)
	if err != nil {
		loggers.Main.Fatal("не удалось загрузить правила доступа", zap.Error(err), zap.String("file", cfg.AccessRulesFile))
	}
	txManager := repositories.NewTxManager(deps.DB)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(deps.DB, loggers.Auth)
	taskRepo := repositories.NewTaskRepository(deps.DB, loggers.Task)
	historyRepo := repositories.NewTaskHistoryRepository(deps.DB)
	attachRepo := repositories.NewAttachmentRepository(deps.DB)
	settingsRepo := repositories.NewColumnSettingsRepository(deps.DB)
	cacheRepo := repositories.NewRedisCacheRepository(deps.Redis)

	taskCache := cache.NewTaskCache(cacheRepo, deps.Hub, cfg.Redis.TasksTTL, loggers.Task)

	// --- 2. СЛУШАТЕЛИ СОБЫТИЙ ---
	tg := telegram.NewService(cfg.Telegram.BotToken, loggers.Approval)
	listeners.NewNotificationListener(tg, deps.Hub, userRepo, cfg.Telegram.ApprovalChatID, loggers.Approval).Register(deps.Bus)

	// --- 3. СЕРВИСЫ ---
	authService := services.NewAuthService(userRepo, cacheRepo, deps.JWT, loggers.Auth, cfg.Auth)
	taskService := services.NewTaskService(txManager, taskRepo, historyRepo, attachRepo, fileStorage, taskCache, deps.Bus, rules, loggers.Task)
	approvalService := services.NewApprovalService(txManager, taskRepo, historyRepo, deps.Bus, rules, loggers.Approval)
	areaService := services.NewAreaService(taskService, rules, loggers.Task)
	reportService := services.NewReportService(taskService, areaService, loggers.Task)
	attachmentService := services.NewAttachmentService(txManager, attachRepo, historyRepo, taskService, fileStorage, loggers.Files)
	settingsService := services.NewColumnSettingsService(settingsRepo, cacheRepo, loggers.Main)

	// --- 4. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, loggers.Auth)
	taskCtrl := controllers.NewTaskController(taskService, taskCache, loggers.Task)
	approvalCtrl := controllers.NewApprovalController(approvalService, taskCache, loggers.Approval)
	areaCtrl := controllers.NewAreaController(areaService, loggers.Task)
	reportCtrl := controllers.NewReportController(reportService, loggers.Task)
	attachmentCtrl := controllers.NewAttachmentController(attachmentService, loggers.Files)
	settingsCtrl := controllers.NewColumnSettingsController(settingsService, taskCache, loggers.Main)
	wsCtrl := controllers.NewWebSocketController(deps.Hub, loggers.Main)

	// --- 5. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runTaskRouter(secureGroup, taskCtrl, approvalCtrl, reportCtrl, authMW)
	runAreaRouter(secureGroup, areaCtrl, settingsCtrl)
	runAttachmentRouter(secureGroup, attachmentCtrl)
	secureGroup.GET("/ws", wsCtrl.ServeWs)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
