package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// NodeProber runs `node --version`.
type NodeProber struct {
	// Bin is the executable to run; defaults to "node".
	Bin string
}

// Version returns the installed Node.js version without the leading "v".
func (n *NodeProber) Version(ctx context.Context) (string, error) {
	bin := n.Bin
	if bin == "" {
		bin = "node"
	}

	nodeBin, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNodeNotFound, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, nodeBin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("running %s --version: %w", nodeBin, err)
		}
		return "", fmt.Errorf("running %s --version: %w: %s", nodeBin, err, msg)
	}

	version := strings.TrimPrefix(strings.TrimSpace(stdout.String()), "v")
	if version == "" {
		return "", fmt.Errorf("%s --version printed nothing", nodeBin)
	}
	return version, nil
}
