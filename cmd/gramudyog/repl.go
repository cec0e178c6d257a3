package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gramudyogai/gramudyog-go/internal/db"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

const (
	// expiryCheckInterval is how often the shell checks the stored token.
	expiryCheckInterval = 30 * time.Second
	// cleanInterval is how often SQL session stores are pruned.
	cleanInterval = time.Hour
)

// shell runs the interactive loop until exit or end of input. Command
// failures are printed and the loop continues.
func (a *app) shell(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	session.StartExpiryWatcher(ctx, a.session, expiryCheckInterval, a.log)
	if a.store != nil && a.store.db != nil {
		db.StartStaleSessionCleaner(ctx, a.store.db, a.store.dialect, cleanInterval, db.DefaultSessionRetention, a.log)
	}

	for {
		fmt.Fprint(a.out, "gramudyog> ")
		if !a.prompt.scanner.Scan() {
			fmt.Fprintln(a.out)
			return a.prompt.scanner.Err()
		}
		args := strings.Fields(a.prompt.scanner.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		case "shell":
			continue
		}
		if err := a.run(ctx, args[0], args[1:]); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}
