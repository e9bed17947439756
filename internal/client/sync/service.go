package sync

import (
	"context"
	"log/slog"

	httpClient "github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/auth"
	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/client/genai"
	"github.com/iudanet/quizkeeper/internal/client/netmon"
	"github.com/iudanet/quizkeeper/internal/client/queue"
	"github.com/iudanet/quizkeeper/internal/models"
)

// SyncResult contains the outcome of an explicit "sync now" action
type SyncResult struct {
	Drain             queue.DrainResult // итоги drain-прохода очереди
	ReconciledQuizzes int               // pending-квизов получило каноническую копию
	FailedQuizzes     int               // pending-квизов осталось после неудачных попыток
}

// Service связывает движок воедино: регистрирует обработчики операций,
// подписывает drain на восстановление связи и выполняет user-invoked
// синхронизацию.
type Service struct {
	queue     *queue.Manager
	cache     *cache.Service
	publisher *Publisher
	auth      *auth.Service
	monitor   *netmon.Monitor
	logger    *slog.Logger
}

// NewService creates a new sync service and registers operation handlers
func NewService(
	queueManager *queue.Manager,
	cacheService *cache.Service,
	apiClient httpClient.ClientAPI,
	generator genai.Generator,
	authService *auth.Service,
	monitor *netmon.Monitor,
	logger *slog.Logger,
) *Service {
	publisher := NewPublisher(apiClient, generator, logger)

	s := &Service{
		queue:     queueManager,
		cache:     cacheService,
		publisher: publisher,
		auth:      authService,
		monitor:   monitor,
		logger:    logger,
	}

	queueManager.Register(models.OperationUploadDocument,
		NewUploadDocumentHandler(apiClient, authService, cacheService, logger))
	queueManager.Register(models.OperationCreateQuiz,
		NewCreateQuizHandler(publisher, authService, cacheService, logger))
	queueManager.Register(models.OperationSaveQuizResult,
		NewSaveQuizResultHandler(apiClient, authService, logger))

	return s
}

// Wire подписывает стандартную проводку движка на переходы связи:
// восстановление соединения автоматически запускает drain очереди.
// Возвращает функцию отписки.
func (s *Service) Wire(ctx context.Context) func() {
	return s.monitor.Subscribe(func(offline bool) {
		s.queue.NoteConnectivity(ctx, offline)

		if offline {
			return
		}

		// Drain в отдельной горутине: callback монитора не должен
		// блокироваться на сетевых вызовах. Single-flight guard внутри
		// Drain исключает двойную обработку.
		go func() {
			if _, err := s.queue.Drain(ctx, false); err != nil {
				s.logger.Error("automatic drain after reconnect failed", "error", err)
			}
		}()
	})
}

// SyncNow выполняет явную синхронизацию: принудительный drain очереди
// плюс реконсиляция pending-квизов текущего пользователя
func (s *Service) SyncNow(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	drain, err := s.queue.Drain(ctx, true)
	if err != nil {
		return nil, err
	}
	result.Drain = *drain

	reconciled, failed := s.reconcilePendingQuizzes(ctx)
	result.ReconciledQuizzes = reconciled
	result.FailedQuizzes = failed

	return result, nil
}

// reconcilePendingQuizzes публикует каждый pending-квиз текущего
// пользователя. Неудачные остаются нетронутыми в кеше и учитываются
// как failed.
func (s *Service) reconcilePendingQuizzes(ctx context.Context) (reconciled, failed int) {
	userID, err := s.auth.UserID(ctx)
	if err != nil {
		s.logger.Warn("skipping pending quiz reconciliation", "error", err)
		return 0, 0
	}

	pending, err := s.cache.PendingQuizzes(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list pending quizzes", "error", err)
		return 0, 0
	}

	if len(pending) == 0 {
		return 0, 0
	}

	accessToken, err := s.auth.AccessToken(ctx)
	if err != nil {
		s.logger.Warn("skipping pending quiz reconciliation", "error", err)
		return 0, len(pending)
	}

	for _, quiz := range pending {
		canonical, err := s.publisher.PublishQuiz(ctx, accessToken, PublishParams{
			// Канонический ID детерминированный: повторная попытка
			// целится в ту же серверную запись
			QuizID:        CanonicalQuizID(quiz.ID),
			UserID:        quiz.UserID,
			Title:         quiz.Title,
			DocumentIDs:   quiz.DocumentIDs,
			QuestionCount: quiz.QuestionCount,
		})
		if err != nil {
			s.logger.Warn("failed to reconcile pending quiz",
				"quiz_id", quiz.ID,
				"error", err)
			failed++
			continue
		}

		if err := s.cache.ReplacePendingQuiz(ctx, quiz.ID, canonical); err != nil {
			s.logger.Error("failed to replace pending quiz in cache",
				"quiz_id", quiz.ID,
				"error", err)
			failed++
			continue
		}

		reconciled++
	}

	s.logger.Info("pending quiz reconciliation completed",
		"reconciled", reconciled,
		"failed", failed)

	return reconciled, failed
}
