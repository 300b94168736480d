package builtins

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

const helpText = `Available Commands:
ls <dir>     - List files and directories in the current folder
cd <dir>     - Change the current working directory
pwd          - Print the current working directory
mkdir <dir>  - Create a new directory
rm <file>    - Remove a file
cat <file>   - Display the contents of a file
cpu          - Show CPU usage percentage
mem/memory   - Show Memory usage statistics
processes/ps - List running processes
clear        - Clear the terminal screen
history      - Show command history
help         - Show this help message
tellmeabout_developer - Show developer information
exit/quit/q  - Exit the terminal

AI Features:
Natural Language - Type natural language commands (3+ words)
AI Status: %s

Note: External system commands are also supported through the host shell.`

const developerInfo = `+==============================================================+
|                    DEVELOPER INFORMATION                     |
+==============================================================+
|                                                              |
|  Name:    Abhinav Singh (RA2211033010203)                    |
|                                                              |
|  College: SRM Institute of Science and Technology            |
|                                                              |
|  Course:  B.Tech Computer Science Engineering with           |
|           specialization in Software Engineering             |
|                                                              |
+==============================================================+

Thank you for using PyTerminal!`

func help(_ context.Context, env *Env, _ []string) result.Result {
	status := env.TranslatorStatus
	if status == "" {
		status = "Disabled"
	}
	return result.OK(fmt.Sprintf(helpText, status))
}

func developer(context.Context, *Env, []string) result.Result {
	return result.OK(developerInfo)
}

func clearScreen(context.Context, *Env, []string) result.Result {
	return result.ClearScreen()
}

func showHistory(ctx context.Context, env *Env, _ []string) result.Result {
	if env.History == nil {
		return result.OK("No commands in history")
	}

	entries, err := env.History.List(ctx, env.Session.ID, env.displayLimit())
	if err != nil {
		return result.Fail(result.CodeGenericIO, "history: error displaying history: %v", err)
	}
	if len(entries) == 0 {
		return result.OK("No commands in history")
	}

	var b strings.Builder
	b.WriteString("Command History:\n")
	b.WriteString(strings.Repeat("-", 50))
	for i, e := range entries {
		mark := "✓"
		if e.Failed() {
			mark = "✗"
		}
		fmt.Fprintf(&b, "\n%2d. %s %s", i+1, mark, e.Command)
	}
	return result.OK(b.String())
}
