package checklist

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestRepository_SeedDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	items, err := store.SeedDefaults(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, items, len(types.DefaultChecklistTemplate))
	for i, item := range items {
		require.Equal(t, types.DefaultChecklistTemplate[i], item.Text)
		require.Equal(t, i, item.Order)
		require.True(t, item.IsDefault)
		require.False(t, item.IsCompleted)
	}

	// A second seed leaves the existing checklist untouched.
	again, err := store.SeedDefaults(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, again, len(types.DefaultChecklistTemplate))
	require.Equal(t, items[0].ID, again[0].ID)
}

func TestRepository_SeedSkipsNonEmptyChecklist(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	custom, err := store.SaveItem(ctx, types.ChecklistItem{
		ID:           uuid.New(),
		CareerFairID: fairID,
		Text:         "email recruiter beforehand",
		Order:        0,
	})
	require.NoError(t, err)

	items, err := store.SeedDefaults(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, custom.ID, items[0].ID)
}

func TestRepository_ListOrdersByDisplayOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	for _, order := range []int{5, 1, 3} {
		_, err := store.SaveItem(ctx, types.ChecklistItem{
			ID:           uuid.New(),
			CareerFairID: fairID,
			Text:         "task",
			Order:        order,
		})
		require.NoError(t, err)
	}

	items, err := store.ListForFair(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 1, items[0].Order)
	require.Equal(t, 3, items[1].Order)
	require.Equal(t, 5, items[2].Order)
}

func TestRepository_SaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	id := uuid.New()
	_, err = store.SaveItem(ctx, types.ChecklistItem{
		ID:           id,
		CareerFairID: fairID,
		Text:         "print resumes",
		IsCompleted:  true,
		Order:        2,
	})
	require.NoError(t, err)

	_, err = store.SaveItem(ctx, types.ChecklistItem{
		ID:           id,
		CareerFairID: fairID,
		Text:         "print 20 resumes",
		Order:        2,
	})
	require.NoError(t, err)

	got, err := store.GetItem(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "print 20 resumes", got.Text)
	require.False(t, got.IsCompleted)
}

func TestRepository_SeedDefaultsConcurrent(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	const seeders = 8
	errs := make([]error, seeders)
	var wg sync.WaitGroup
	for i := 0; i < seeders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.SeedDefaults(ctx, fairID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	items, err := store.ListForFair(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, items, len(types.DefaultChecklistTemplate))
}

func TestRepository_DisplayOrderUniquePerFair(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	_, err = store.SaveItem(ctx, types.ChecklistItem{
		ID:           uuid.New(),
		CareerFairID: fairID,
		Text:         "book travel",
		Order:        3,
	})
	require.NoError(t, err)

	// A second row at the same position of the same fair violates the index.
	_, err = store.SaveItem(ctx, types.ChecklistItem{
		ID:           uuid.New(),
		CareerFairID: fairID,
		Text:         "reserve parking",
		Order:        3,
	})
	require.Error(t, err)

	// The same position under another fair is fine.
	_, err = store.SaveItem(ctx, types.ChecklistItem{
		ID:           uuid.New(),
		CareerFairID: uuid.New(),
		Text:         "reserve parking",
		Order:        3,
	})
	require.NoError(t, err)
}

func TestRepository_NextOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	next, err := store.NextOrder(ctx, fairID)
	require.NoError(t, err)
	require.Equal(t, 0, next)

	_, err = store.SeedDefaults(ctx, fairID)
	require.NoError(t, err)

	next, err = store.NextOrder(ctx, fairID)
	require.NoError(t, err)
	require.Equal(t, len(types.DefaultChecklistTemplate), next)

	// Other fairs keep their own numbering.
	next, err = store.NextOrder(ctx, uuid.New())
	require.NoError(t, err)
	require.Equal(t, 0, next)
}

func TestRepository_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	db := newTestChecklistDB(t)
	applyChecklistDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	require.NoError(t, store.DeleteItem(ctx, uuid.New()))
}

func newTestChecklistDB(t *testing.T) *bun.DB {
	sqldb, err := sql.Open("sqlite3", ":memory:?cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
		_ = sqldb.Close()
	})
	return db
}

func applyChecklistDDL(t *testing.T, db *bun.DB) {
	content, err := os.ReadFile("../data/sql/migrations/sqlite/000001_career_fair_core.up.sql")
	require.NoError(t, err)
	for _, stmt := range splitChecklistStatements(string(content)) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func splitChecklistStatements(sql string) []string {
	lines := strings.Split(sql, "\n")
	var builder strings.Builder
	var statements []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		builder.WriteString(line)
		if strings.HasSuffix(line, ";") {
			statements = append(statements, strings.TrimSuffix(builder.String(), ";"))
			builder.Reset()
		} else {
			builder.WriteString(" ")
		}
	}
	if builder.Len() > 0 {
		statements = append(statements, builder.String())
	}
	return statements
}
