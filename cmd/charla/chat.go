package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chriscow/charla/internal/tutor"
	"github.com/chriscow/charla/pkg/plugin"
	"github.com/google/uuid"
)

// runChat reads learner lines from in and writes the tutor's replies to
// out until EOF, /quit or ctx is done.
func runChat(ctx context.Context, svc *tutor.Service, in io.Reader, out io.Writer, level, topic string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	key := uuid.NewString()
	lvl := tutor.ParseLevel(level)
	tp := tutor.ParseTopic(topic)

	fmt.Fprintf(out, "Nivel: %s · Tema: %s (/quit para salir)\n", lvl, tp)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			cmd, arg, _ := strings.Cut(line[1:], " ")
			switch cmd {
			case "quit", "exit":
				return nil
			case "reset":
				svc.ResetSession(key)
				fmt.Fprintln(out, "Conversación reiniciada.")
			case "level":
				lvl = tutor.ParseLevel(arg)
				fmt.Fprintf(out, "Nivel: %s\n", lvl)
			case "topic":
				tp = tutor.ParseTopic(arg)
				fmt.Fprintf(out, "Tema: %s\n", tp)
			case "history":
				for _, turn := range svc.History(key) {
					fmt.Fprintf(out, "  %s: %s\n", turn.Role, turn.Content)
				}
			default:
				fmt.Fprintf(out, "Comando desconocido: /%s\n", cmd)
			}
			continue
		}

		reply, err := svc.ProcessTurn(ctx, key, line, lvl.String(), tp.String())
		if err != nil && !errors.Is(err, tutor.ErrTurnFailed) {
			return err
		}
		fmt.Fprintln(out, reply)
	}
}

func listPlugins(w io.Writer, kind string) error {
	plugins := plugin.List(kind)

	if len(plugins) == 0 {
		if kind == "" {
			fmt.Fprintln(w, "No plugins registered")
		} else {
			fmt.Fprintf(w, "No plugins registered for kind: %s\n", kind)
		}
		return nil
	}

	fmt.Fprintf(w, "%-8s %-12s %-10s %s\n", "KIND", "NAME", "VERSION", "DESCRIPTION")
	fmt.Fprintln(w, "------------------------------------------------------------")

	for _, p := range plugins {
		version := p.Version
		if version == "" {
			version = "N/A"
		}
		description := p.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(w, "%-8s %-12s %-10s %s\n", p.Kind, p.Name, version, description)
	}
	return nil
}
