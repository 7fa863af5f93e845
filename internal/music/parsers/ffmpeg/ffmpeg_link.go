package ffmpeg

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"tastybot/internal/music/parsers"
)

var binary = "ffmpeg"

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func outputArgs() []string {
	return []string{
		"-vn",
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", parsers.SampleRate),
		"-ac", fmt.Sprintf("%d", parsers.Channels),
		"-loglevel", "warning",
		"pipe:1",
	}
}

func linkArgs(input string) []string {
	var args []string
	if isRemote(input) {
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	args = append(args, "-i", input)
	return append(args, outputArgs()...)
}

// Link starts ffmpeg on a file path or media URL and returns its PCM output.
func Link(input string) (io.ReadCloser, func(), error) {
	cmd := exec.Command(binary, linkArgs(input)...)

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}

	return reader, cleanup, nil
}
