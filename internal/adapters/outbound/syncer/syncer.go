package syncer

import (
	"fmt"
	"io"
	"os/exec"
)

// ScriptSyncer implements domain.ResourceSyncer by running the configured
// sync script. The script owns all download and copy mechanics.
type ScriptSyncer struct {
	dir    string
	script string
	out    io.Writer
}

// New returns a syncer that runs `bash <script>` inside dir, streaming the
// script's output to out.
func New(dir, script string, out io.Writer) *ScriptSyncer {
	return &ScriptSyncer{dir: dir, script: script, out: out}
}

func (s *ScriptSyncer) Sync() error {
	cmd := exec.Command("bash", s.script)
	cmd.Dir = s.dir
	cmd.Stdout = s.out
	cmd.Stderr = s.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running sync script %s: %w", s.script, err)
	}
	return nil
}
