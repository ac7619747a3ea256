// seehuhn.de/go/hextile - hexagon tiling art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package progress shows a spinner on a terminal while a long-running
// step is in progress.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ANSI colour codes used for status messages.
const (
	ErrorColor   = "\x1b[31m"
	SuccessColor = "\x1b[92m"
	DefaultColor = "\x1b[0m"
)

const frames = "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"

// Spinner writes an animated status line to a writer.
// A Spinner can be started and stopped once.
type Spinner struct {
	w     io.Writer
	delay time.Duration

	mu      sync.Mutex
	message string

	stop chan struct{}
	done chan struct{}
}

// New returns a spinner which shows msg on w, advancing one frame
// every delay.
func New(w io.Writer, msg string, delay time.Duration) *Spinner {
	return &Spinner{
		w:       w,
		delay:   delay,
		message: msg,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start starts the animation in a new goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.delay)
		defer ticker.Stop()
		for i := 0; ; i++ {
			r := []rune(frames)
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%s %s%c%s", s.message, SuccessColor, r[i%len(r)], DefaultColor)
			s.mu.Unlock()

			select {
			case <-s.stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Update replaces the message shown next to the spinner.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	fmt.Fprint(s.w, "\r\033[K")
}

// Stop ends the animation, clears the status line and prints final,
// if it is not empty.  Stop waits for the animation goroutine to exit.
func (s *Spinner) Stop(final string) {
	close(s.stop)
	<-s.done

	fmt.Fprint(s.w, "\r\033[K")
	if final != "" {
		fmt.Fprintln(s.w, final)
	}
}

// Succeeded formats a message for a step which completed.
func Succeeded(step string) string {
	return fmt.Sprintf("%s %sdone ✔%s", step, SuccessColor, DefaultColor)
}

// Failed formats a message for a step which failed.
func Failed(step string) string {
	return fmt.Sprintf("%s %sfailed ✗%s", step, ErrorColor, DefaultColor)
}
