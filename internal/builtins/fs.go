package builtins

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

func pwd(_ context.Context, env *Env, _ []string) result.Result {
	return result.OK(env.Dir())
}

func ls(_ context.Context, env *Env, args []string) result.Result {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	path := env.Resolve(target)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result.Fail(result.CodeNotFound, "ls: no such directory: '%s'", target)
	case errors.Is(err, fs.ErrPermission):
		return result.Fail(result.CodePermissionDenied, "ls: permission denied: '%s'", target)
	case err != nil:
		return result.Fail(result.CodeGenericIO, "ls: error listing directory: %v", err)
	case !info.IsDir():
		return result.Fail(result.CodeWrongType, "ls: not a directory: '%s'", target)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return result.Fail(result.CodePermissionDenied, "ls: permission denied: '%s'", target)
		}
		return result.Fail(result.CodeGenericIO, "ls: error listing directory: %v", err)
	}
	if len(entries) == 0 {
		return result.OK("Directory is empty")
	}

	// os.ReadDir already sorts by name.
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		st, err := os.Stat(filepath.Join(path, name))
		switch {
		case err == nil && st.IsDir():
			lines = append(lines, "📁 "+name+"/")
		case err == nil:
			lines = append(lines, fmt.Sprintf("📄 %s (%s)", name, formatFileSize(st.Size())))
		default:
			lines = append(lines, "📄 "+name)
		}
	}
	return result.OK(strings.Join(lines, "\n"))
}

func cd(_ context.Context, env *Env, args []string) result.Result {
	if len(args) == 0 {
		return result.Fail(result.CodeUsage, "cd: missing directory argument. Usage: cd <directory>")
	}
	target := args[0]
	if target == "." {
		return result.OK("Changed to: " + env.Dir())
	}

	path := env.Resolve(target)
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result.Fail(result.CodeNotFound, "cd: no such directory: '%s'", target)
	case errors.Is(err, fs.ErrPermission):
		return result.Fail(result.CodePermissionDenied, "cd: permission denied: '%s'", target)
	case err != nil:
		return result.Fail(result.CodeGenericIO, "cd: error: %v", err)
	case !info.IsDir():
		return result.Fail(result.CodeWrongType, "cd: not a directory: '%s'", target)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return result.Fail(result.CodePermissionDenied, "cd: permission denied: '%s'", target)
		}
		return result.Fail(result.CodeGenericIO, "cd: error: %v", err)
	}
	_ = f.Close()

	env.Session.SetDir(path)
	return result.OK("Changed to: " + env.Dir())
}

func mkdir(_ context.Context, env *Env, args []string) result.Result {
	if len(args) == 0 {
		return result.Fail(result.CodeUsage, "mkdir: missing directory name. Usage: mkdir <directory_name>")
	}
	name := args[0]
	path := env.Resolve(name)

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return result.Fail(result.CodeWrongType, "mkdir: cannot create directory '%s': Directory exists", name)
		}
		return result.Fail(result.CodeWrongType, "mkdir: cannot create directory '%s': File exists", name)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return result.Fail(result.CodePermissionDenied, "mkdir: permission denied: '%s'", name)
		}
		return result.Fail(result.CodeGenericIO, "mkdir: cannot create directory '%s': %v", name, err)
	}
	return result.OK("Created directory: " + name)
}

func rm(_ context.Context, env *Env, args []string) result.Result {
	if len(args) == 0 {
		return result.Fail(result.CodeUsage, "rm: missing file name. Usage: rm <file_name>")
	}
	name := args[0]
	path := env.Resolve(name)

	info, err := os.Lstat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result.Fail(result.CodeNotFound, "rm: cannot remove '%s': No such file", name)
	case errors.Is(err, fs.ErrPermission):
		return result.Fail(result.CodePermissionDenied, "rm: permission denied: '%s'", name)
	case err != nil:
		return result.Fail(result.CodeGenericIO, "rm: error: %v", err)
	case info.IsDir():
		return result.Fail(result.CodeWrongType,
			"rm: cannot remove '%s': Is a directory (directory removal is not supported)", name)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return result.Fail(result.CodePermissionDenied, "rm: permission denied: '%s'", name)
		}
		return result.Fail(result.CodeGenericIO, "rm: error: %v", err)
	}
	return result.OK("Removed file: " + name)
}

func cat(_ context.Context, env *Env, args []string) result.Result {
	if len(args) == 0 {
		return result.Fail(result.CodeUsage, "cat: missing file name. Usage: cat <file_name>")
	}
	name := args[0]
	path := env.Resolve(name)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result.Fail(result.CodeNotFound, "cat: no such file: '%s'", name)
	case errors.Is(err, fs.ErrPermission):
		return result.Fail(result.CodePermissionDenied, "cat: permission denied: '%s'", name)
	case err != nil:
		return result.Fail(result.CodeGenericIO, "cat: error: %v", err)
	case info.IsDir():
		return result.Fail(result.CodeWrongType, "cat: '%s' is not a file", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return result.Fail(result.CodePermissionDenied, "cat: permission denied: '%s'", name)
		}
		return result.Fail(result.CodeGenericIO, "cat: error: %v", err)
	}
	return result.OK(strings.ToValidUTF8(string(data), "\uFFFD"))
}

// formatFileSize renders sizes the way ls prints them: whole bytes,
// kilobytes or megabytes, truncated.
func formatFileSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%dKB", n/1024)
	default:
		return fmt.Sprintf("%dMB", n/(1024*1024))
	}
}
