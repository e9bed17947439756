package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/auth"
	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/client/cli"
	"github.com/iudanet/quizkeeper/internal/client/genai"
	"github.com/iudanet/quizkeeper/internal/client/iocli"
	"github.com/iudanet/quizkeeper/internal/client/netmon"
	"github.com/iudanet/quizkeeper/internal/client/queue"
	"github.com/iudanet/quizkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/quizkeeper/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// probeInterval задает период фонового опроса доступности сервера
const probeInterval = 30 * time.Second

// healthProber адаптирует health-чек API клиента под монитор связи
type healthProber struct {
	api api.ClientAPI
}

func (p *healthProber) Probe(ctx context.Context) (bool, error) {
	if err := p.api.Health(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	genaiURL := flag.String("genai", "http://localhost:8090", "AI generation service URL")
	dbPath := flag.String("db", "quizkeeper-client.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// CLI пишет результат через iocli, логи уходят в stderr и не
	// мешают выводу команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы поверх общего хранилища
	apiClient := api.NewClient(*serverURL)
	generator := genai.NewClient(*genaiURL, os.Getenv("QUIZKEEPER_GENAI_API_KEY"))
	authService := auth.NewService(boltStorage)
	cacheService := cache.NewService(boltStorage, logger)

	monitor := netmon.New(&healthProber{api: apiClient}, probeInterval, logger)
	queueManager := queue.NewManager(boltStorage, boltStorage, monitor, logger)

	syncService := sync.NewService(queueManager, cacheService, apiClient, generator, authService, monitor, logger)

	// Монитор оповещает sync-сервис о восстановлении связи; для
	// одноразовой CLI-команды это дает авто-drain, если сеть
	// появится пока команда выполняется
	unwire := syncService.Wire(ctx)
	defer unwire()

	monitor.Start(ctx)
	defer monitor.Stop()

	app := cli.New(iocli.NewStdio(), apiClient, authService, cacheService, queueManager, syncService, monitor, logger)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("QuizKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
