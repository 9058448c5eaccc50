package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits,
// together with the reminder rows it refers to.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, txErr := p.tx(); txErr == nil {
		res, err = insertTx(ctx, tx, args, opts)
	} else {
		res, err = insert(ctx, p.SQLDB(), args, opts)
	}
	if err != nil {
		return false, err
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertTx uses an insert-only client; it never fetches jobs, so it needs no
// workers or queues.
func insertTx(ctx context.Context,
	tx *sql.Tx,
	args river.JobArgs,
	opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job: %w", err)
	}

	return res, nil
}

func insert(ctx context.Context,
	db *sql.DB,
	args river.JobArgs,
	opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job: %w", err)
	}

	return res, nil
}
