package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/docker/cli/cli/streams"
	"github.com/moby/term"

	"github.com/ericcurtin/bootc-image-builder/internal"
)

// buildMessage is one entry of the daemon's JSON build stream.
type buildMessage struct {
	Stream      string `json:"stream"`
	Status      string `json:"status"`
	ErrorDetail struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// renderBuildOutput decodes the daemon's build stream and writes it through
// the Writer. Step output is passed through as-is. Status updates (layer
// pulls and the like) are rewritten in place on a terminal and printed as
// plain lines otherwise. An errorDetail entry aborts rendering and is
// returned as an internal.BuildError.
func renderBuildOutput(ctx context.Context, body io.Reader, tag internal.ImageTag, w internal.Writer) error {
	out := streams.NewOut(w.GetWriter())
	inStatusLine := false

	decoder := json.NewDecoder(body)
	for decoder.More() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var msg buildMessage
		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode build output: %w\nThe daemon may have returned malformed JSON", err)
		}

		if msg.ErrorDetail.Message != "" || msg.ErrorDetail.Code != 0 {
			if inStatusLine {
				w.Print("\n")
			}
			code := msg.ErrorDetail.Code
			if code == 0 {
				code = 1
			}
			return &internal.BuildError{
				Tag:      tag,
				ExitCode: code,
				Err:      errors.New(msg.ErrorDetail.Message),
			}
		}

		switch {
		case msg.Stream != "":
			if inStatusLine {
				w.Print("\n")
				inStatusLine = false
			}
			w.Print(msg.Stream)
		case msg.Status != "":
			if out.IsTerminal() {
				w.Printf("\r%s", truncate(msg.Status, terminalWidth(out)))
				inStatusLine = true
			} else {
				w.Println(msg.Status)
			}
		}
	}

	if inStatusLine {
		w.Print("\n")
	}

	return nil
}

// terminalWidth returns the width of the attached terminal, or a
// conservative default when it cannot be determined.
func terminalWidth(out *streams.Out) int {
	ws, err := term.GetWinsize(out.FD())
	if err != nil || ws.Width == 0 {
		return 80
	}
	return int(ws.Width)
}

// truncate cuts s to at most width runes so a rewritten status line never
// wraps. Cutting on rune boundaries keeps multibyte output intact.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
