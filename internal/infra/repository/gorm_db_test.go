package repository

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"testing"
	"time"

	"foodcart/internal/domain/model"
	"foodcart/internal/infra/db"
	repo "foodcart/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// POSTGRES_* が無ければスキップ（docker compose のDBで回す）
func testDBOptions(t *testing.T) db.Options {
	t.Helper()

	host := os.Getenv("POSTGRES_HOST")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	name := os.Getenv("POSTGRES_DB")
	if host == "" || user == "" || pass == "" || name == "" {
		t.Skip("POSTGRES_* env is not set")
	}

	port, err := strconv.Atoi(os.Getenv("POSTGRES_PORT"))
	if err != nil {
		port = 5432
	}
	return db.Options{Host: host, Port: port, User: user, Password: pass, Name: name, SSLMode: "disable"}
}

func mustOpenGorm(t *testing.T, opts db.Options) *gorm.DB {
	t.Helper()

	gormDB, err := db.Connect(opts)
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.StorageEntry{}, &model.StoredRecord{}))
	return gormDB
}

// gormを通さずに中身を見る
func mustOpenSQL(t *testing.T, opts db.Options) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("pgx", db.DSN(opts))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sqlDB.PingContext(ctx))
	return sqlDB
}

func TestKVGormRepository_DB(t *testing.T) {
	opts := testDBOptions(t)
	kv := NewKVGormRepository(mustOpenGorm(t, opts))
	sqlDB := mustOpenSQL(t, opts)
	ctx := context.Background()

	key := "test-cart-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	t.Cleanup(func() { _ = kv.Remove(context.Background(), key) })

	_, err := kv.Get(ctx, key)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, kv.Set(ctx, key, `[]`))
	require.NoError(t, kv.Set(ctx, key, `[{"name":"Pizza","price":10,"qty":1,"img":""}]`))

	//上書きなので1行だけ
	var cnt int
	var value string
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(value) FROM local_storage WHERE key = $1`, key).Scan(&cnt, &value))
	assert.Equal(t, 1, cnt)
	assert.Equal(t, `[{"name":"Pizza","price":10,"qty":1,"img":""}]`, value)

	require.NoError(t, kv.Remove(ctx, key))
	require.NoError(t, kv.Remove(ctx, key))
	_, err = kv.Get(ctx, key)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestRecordGormRepository_DB(t *testing.T) {
	opts := testDBOptions(t)
	records := NewRecordGormRepository(mustOpenGorm(t, opts))
	sqlDB := mustOpenSQL(t, opts)
	ctx := context.Background()

	key := "test-history-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	t.Cleanup(func() {
		_, _ = sqlDB.ExecContext(context.Background(), `DELETE FROM storage WHERE key = $1`, key)
	})

	first, err := records.Create(ctx, model.StoredRecord{Key: key, Value: `[1]`})
	require.NoError(t, err)
	second, err := records.Create(ctx, model.StoredRecord{Key: key, Value: `[1,2]`})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := records.List(ctx)
	require.NoError(t, err)

	var mine []model.StoredRecord
	for _, r := range list {
		if r.Key == key {
			mine = append(mine, r)
		}
	}
	require.Len(t, mine, 2)
	assert.Equal(t, `[1]`, mine[0].Value)
	assert.Equal(t, `[1,2]`, mine[1].Value)
}
