package mysql

import (
	"context"
	"database/sql"

	"github.com/farkinca1971/office-management-sub003/models"
	"github.com/farkinca1971/office-management-sub003/storage"

	"github.com/pkg/errors"
)

type itemsRepo struct {
	db *sql.DB
}

func NewItemsRepo(db *sql.DB) storage.ItemsRepoI {
	return &itemsRepo{
		db: db,
	}
}

// Run executes a compiled statement. Reads are scanned generically by
// column name; writes report the affected row count.
func (i *itemsRepo) Run(ctx context.Context, stmt models.CompiledStatement) (*models.Result, error) {
	if stmt.Operation == models.OperationSelect {
		return i.query(ctx, stmt)
	}

	return i.exec(ctx, stmt)
}

func (i *itemsRepo) query(ctx context.Context, stmt models.CompiledStatement) (*models.Result, error) {
	rows, err := i.db.QueryContext(ctx, stmt.Statement)
	if err != nil {
		return nil, errors.Wrapf(err, "error while querying %s", stmt.Table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "error while reading columns")
	}

	result := &models.Result{
		Rows: []map[string]any{},
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for idx := range values {
			pointers[idx] = &values[idx]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrapf(err, "error while scanning %s row", stmt.Table)
		}

		row := make(map[string]any, len(columns))
		for idx, column := range columns {
			// The driver hands text columns back as []byte.
			if b, ok := values[idx].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[idx]
		}

		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "error while iterating %s rows", stmt.Table)
	}

	return result, nil
}

func (i *itemsRepo) exec(ctx context.Context, stmt models.CompiledStatement) (*models.Result, error) {
	res, err := i.db.ExecContext(ctx, stmt.Statement)
	if err != nil {
		return nil, errors.Wrapf(err, "error while executing %s on %s", stmt.Operation, stmt.Table)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "error while reading affected rows")
	}

	return &models.Result{
		RowsAffected: affected,
	}, nil
}
