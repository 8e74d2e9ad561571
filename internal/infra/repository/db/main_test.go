package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDao(t *testing.T) *DbDao {
	conn, err := GetDbConn("shopcenter_test", "localhost", "5432", "royce", "password")
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	dao := NewDbDao(conn)
	require.NoError(t, dao.InitMigrate())
	return dao
}

func cleanTables(t *testing.T, dao *DbDao) {
	for _, table := range []string{"order_items", "orders", "cart_items", "carts", "products", "categories", "users"} {
		require.NoError(t, dao.Exec("DELETE FROM "+table).Error)
	}
}
