package main

import (
	"context"
	"io"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
	emailsvc "github.com/trezcool/darasa/services/email"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	logger := logsvc.NewZerologLogger(conf)

	repos, err := database.Open(conf)
	if err != nil {
		logger.Fatal("setting up database", err)
	}
	defer func() {
		if err = repos.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	mailSvc := emailsvc.NewConsoleService(conf)
	usrSvc := user.NewService(repos.User, mailSvc)
	crsSvc := course.NewService(repos.Course)

	// =========================================================================
	// Initialize App

	ctx := context.Background()

	if conf.SeedDemoData {
		if err = seedDemoData(ctx, repos); err != nil {
			logger.Fatal("seeding demo data", err)
		}
	}

	// =========================================================================
	// Run Session

	sess := newSession(newConsole(os.Stdin, os.Stdout), usrSvc, crsSvc, logger)
	if err = sess.run(ctx); err != nil && err != io.EOF {
		logger.Fatal("session failed", err)
	}
}
