package cli

import (
	"log/slog"

	httpClient "github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/auth"
	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/client/iocli"
	"github.com/iudanet/quizkeeper/internal/client/netmon"
	"github.com/iudanet/quizkeeper/internal/client/queue"
	"github.com/iudanet/quizkeeper/internal/client/sync"
)

// Cli связывает команды клиента с сервисами движка
type Cli struct {
	io           iocli.IO
	apiClient    httpClient.ClientAPI
	authService  *auth.Service
	cacheService *cache.Service
	queueManager *queue.Manager
	syncService  *sync.Service
	monitor      *netmon.Monitor
	logger       *slog.Logger
}

func New(
	io iocli.IO,
	apiClient httpClient.ClientAPI,
	authService *auth.Service,
	cacheService *cache.Service,
	queueManager *queue.Manager,
	syncService *sync.Service,
	monitor *netmon.Monitor,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:           io,
		apiClient:    apiClient,
		authService:  authService,
		cacheService: cacheService,
		queueManager: queueManager,
		syncService:  syncService,
		monitor:      monitor,
		logger:       logger,
	}
}

func PrintUsage() {
	u := iocli.NewStdio()
	u.Println("QuizKeeper Client")
	u.Println("")
	u.Println("Usage:")
	u.Println("  quizkeeper [OPTIONS] COMMAND")
	u.Println("")
	u.Println("Options:")
	u.Println("  --version          Show version information")
	u.Println("  --server URL       Server URL (default: http://localhost:8080)")
	u.Println("  --genai URL        AI generation service URL (default: http://localhost:8090)")
	u.Println("  --db PATH          Path to local database (default: quizkeeper-client.db)")
	u.Println("")
	u.Println("Commands:")
	u.Println("  register                        Register new user")
	u.Println("  login                           Login to server")
	u.Println("  logout                          Logout (remove local session)")
	u.Println("  status                          Show authentication and sync status")
	u.Println("  upload <file>                   Upload a study document (queued when offline)")
	u.Println("  documents                       List documents")
	u.Println("  quiz create --docs a,b --count n [--title t]")
	u.Println("                                  Generate a quiz from uploaded documents")
	u.Println("  quizzes                         List quizzes")
	u.Println("  take <quiz-id>                  Take a quiz and record the result")
	u.Println("  sync                            Force synchronization with server")
	u.Println("")
	u.Println("Examples:")
	u.Println("  quizkeeper register")
	u.Println("  quizkeeper login")
	u.Println("  quizkeeper upload ./lecture-notes.pdf")
	u.Println("  quizkeeper quiz create --docs b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 --count 10")
	u.Println("  quizkeeper quizzes")
	u.Println("  quizkeeper --server https://example.com sync")
}
