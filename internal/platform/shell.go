package platform

import (
	"path"
	"strings"
)

// Shell identifies the shell that invoked the CLI.
type Shell string

const (
	ShellUnknown    Shell = "unknown"
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellSh         Shell = "sh"
	ShellPowerShell Shell = "powershell"
	ShellPwsh       Shell = "pwsh"
	ShellCmd        Shell = "cmd"
)

var shellsByBinary = map[string]Shell{
	"bash":           ShellBash,
	"zsh":            ShellZsh,
	"fish":           ShellFish,
	"sh":             ShellSh,
	"dash":           ShellSh,
	"ash":            ShellSh,
	"powershell":     ShellPowerShell,
	"powershell_ise": ShellPowerShell,
	"pwsh":           ShellPwsh,
	"cmd":            ShellCmd,
}

// DetectShell infers the invoking shell from an environment snapshot.
// SHELL wins when set (Git Bash and WSL set it on Windows too). On Windows
// without SHELL, a per-user PSModulePath entry marks a PowerShell session and
// ComSpec is the cmd.exe fallback.
func DetectShell(env map[string]string, goos string) Shell {
	if s := env["SHELL"]; s != "" {
		return shellFromPath(s)
	}
	if goos != "windows" {
		return ShellUnknown
	}
	if psPath := env["PSModulePath"]; psPath != "" {
		lower := strings.ToLower(psPath)
		if strings.Contains(lower, `\documents\powershell\`) {
			return ShellPwsh
		}
		if strings.Contains(lower, `\documents\windowspowershell\`) {
			return ShellPowerShell
		}
	}
	if comspec := env["ComSpec"]; comspec != "" {
		return shellFromPath(comspec)
	}
	return ShellUnknown
}

// NeedsQuoting reports whether the shell mangles unquoted arguments such as
// "add:component" or "--flag=value" lists.
func (s Shell) NeedsQuoting() bool {
	switch s {
	case ShellPowerShell, ShellPwsh, ShellCmd:
		return true
	}
	return false
}

func shellFromPath(p string) Shell {
	base := strings.ToLower(path.Base(strings.ReplaceAll(p, `\`, "/")))
	base = strings.TrimSuffix(base, ".exe")
	if s, ok := shellsByBinary[base]; ok {
		return s
	}
	return ShellUnknown
}
