package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду клиента. Неизвестная команда — ошибка,
// решение о коде выхода принимает main.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "upload":
		return c.runUpload(ctx, args)
	case "documents":
		return c.runDocuments(ctx)
	case "quiz":
		if len(args) == 0 || args[0] != "create" {
			return fmt.Errorf("usage: quizkeeper quiz create --docs a,b --count n")
		}
		return c.runQuizCreate(ctx, args[1:])
	case "quizzes":
		return c.runQuizzes(ctx)
	case "take":
		return c.runTake(ctx, args)
	case "sync":
		return c.runSync(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
