// Admin tool: the only path that deletes users. Deleting a user cascades to
// their behavior events.
//
// Usage:
//
//	tool -delete -id 42
//	tool -delete -email someone@example.com
//	tool -summary -id 42
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/recommend"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/user"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/config"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/infrastructure/db/postgres"
)

func main() {
	var (
		doDelete  = flag.Bool("delete", false, "delete a user (and cascade their behavior events)")
		doSummary = flag.Bool("summary", false, "print a user's behavior summary")
		id        = flag.Int64("id", 0, "user id")
		email     = flag.String("email", "", "user email (resolved to an id)")
	)
	flag.Parse()

	if !*doDelete && !*doSummary {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepo(db)
	behaviorRepo := postgres.NewBehaviorRepo(db)
	userSvc := user.New(userRepo)
	recSvc := recommend.New(behaviorRepo)

	target := *id
	if target == 0 && *email != "" {
		u, err := userSvc.FindByEmail(ctx, *email)
		if err != nil {
			fatal(err)
		}
		target = u.ID
	}
	if target == 0 {
		fatal(fmt.Errorf("one of -id or -email is required"))
	}

	if *doSummary {
		res, err := recSvc.Summarize(ctx, target)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("user %d: %d events\n", res.Summary.UserID, res.Summary.Total)
		for _, c := range res.Summary.Counts {
			fmt.Printf("  %-20s %d\n", c.EventType, c.Count)
		}
	}

	if *doDelete {
		if err := userSvc.Delete(ctx, target); err != nil {
			fatal(err)
		}
		fmt.Printf("deleted user %d (behavior events cascade)\n", target)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
