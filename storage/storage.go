package storage

import (
	"context"

	"github.com/farkinca1971/office-management-sub003/models"
)

type StorageI interface {
	Items() ItemsRepoI
	CloseDB()
}

// ItemsRepoI runs compiled statements as-is against the database. The
// statement text already carries its escaped literals; execution adds no
// parameters of its own.
type ItemsRepoI interface {
	Run(ctx context.Context, stmt models.CompiledStatement) (*models.Result, error)
}
