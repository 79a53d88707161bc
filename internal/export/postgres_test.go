package export

import (
	"context"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/garmio/seedgen/pkg/logger"
)

func TestLoaderLoadsTablesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := fixtureDataset()
	// Non-empty fixture tables, in generation order.
	for _, name := range []string{"workspaces", "accounts", "products", "orders", "demand_forecasts"} {
		mock.ExpectBegin()
		mock.ExpectExec(fmt.Sprintf("INSERT INTO %s", name)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	loader, err := NewLoader(db, logger.NewTestLogger(t), 500)
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background(), ds))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoaderBatchesWithinOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := fixtureDataset()
	ws := *ds.Workspaces[0]
	ws.ID = "ws-2"
	ds.Workspaces = append(ds.Workspaces, &ws)
	ds.Accounts = nil
	ds.Products = nil
	ds.Orders = nil
	ds.Forecasts = nil

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workspaces").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO workspaces").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	loader, err := NewLoader(db, logger.NewTestLogger(t), 1)
	require.NoError(t, err)
	require.NoError(t, loader.Load(context.Background(), ds))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoaderRollsBackFailedTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := fixtureDataset()
	ds.Accounts = nil
	ds.Products = nil
	ds.Orders = nil
	ds.Forecasts = nil

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workspaces").WillReturnError(fmt.Errorf("relation does not exist"))
	mock.ExpectRollback()

	loader, err := NewLoader(db, logger.NewTestLogger(t), 500)
	require.NoError(t, err)

	err = loader.Load(context.Background(), ds)
	require.Error(t, err)
	require.Contains(t, err.Error(), "workspaces")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewLoaderRejectsBadBatchSize(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewLoader(db, logger.NewTestLogger(t), 0)
	require.Error(t, err)
}
