package ffmpeg

import (
	"fmt"
	"io"
	"os/exec"
)

// Pipe starts ffmpeg reading the encoded media from src.
func Pipe(src io.Reader) (io.ReadCloser, func(), error) {
	cmd := exec.Command(binary, append([]string{"-i", "pipe:0"}, outputArgs()...)...)
	cmd.Stdin = src

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("ffmpeg stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}

	return reader, cleanup, nil
}
