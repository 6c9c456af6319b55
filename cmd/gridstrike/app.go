package main

import (
	"github.com/ericogr/gridstrike/internal/logging"
	"github.com/ericogr/gridstrike/internal/storage"
)

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
