package service

import (
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/stretchr/testify/require"
)

// 測試需要本機postgres，連不上就跳過整個suite
func setupTestDao(t *testing.T) *db.DbDao {
	conn, err := db.GetDbConn("shopcenter_test", "localhost", "5432", "royce", "password")
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	dao := db.NewDbDao(conn)
	require.NoError(t, dao.InitMigrate())
	return dao
}

// 清空資料表，依FK相依順序
func cleanTables(t *testing.T, dao *db.DbDao) {
	for _, table := range []string{
		"order_items", "orders",
		"cart_items", "carts",
		"products", "categories",
		"users",
	} {
		require.NoError(t, dao.Exec("DELETE FROM "+table).Error)
	}
}
