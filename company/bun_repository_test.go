package company

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fairbuddy/go-fairbuddy/image"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestRepository_SaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	db := newTestCompanyDB(t)
	applyCompanyDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	id := uuid.New()
	first, err := store.SaveCompany(ctx, types.Company{
		ID:           id,
		CareerFairID: fairID,
		CompanyName:  "Acme Robotics",
		BoothNumber:  "B-14",
		Positions:    []string{"Backend Engineer", "SRE"},
		Tags:         []string{"robotics"},
		UserNotes:    "spoke with Dana",
		Priority:     types.PriorityHigh,
	})
	require.NoError(t, err)

	_, err = store.SaveCompany(ctx, types.Company{
		ID:           id,
		CareerFairID: fairID,
		CompanyName:  "Acme Robotics Inc",
		Positions:    []string{"Backend Engineer"},
	})
	require.NoError(t, err)

	got, err := store.GetCompany(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Acme Robotics Inc", got.CompanyName)
	// Full replace: booth, notes, and tags from the first save are gone.
	require.Empty(t, got.BoothNumber)
	require.Empty(t, got.UserNotes)
	require.Empty(t, got.Tags)
	require.Equal(t, []string{"Backend Engineer"}, got.Positions)
	require.Equal(t, first.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestRepository_ListOrdersByCreatedAt(t *testing.T) {
	ctx := context.Background()
	db := newTestCompanyDB(t)
	applyCompanyDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"third", "first", "second"}
	offsets := []time.Duration{2 * time.Hour, 0, time.Hour}
	for i, name := range names {
		_, err := store.SaveCompany(ctx, types.Company{
			ID:           uuid.New(),
			CareerFairID: fairID,
			CompanyName:  name,
			CreatedAt:    base.Add(offsets[i]),
		})
		require.NoError(t, err)
	}

	companies, err := store.ListForFair(ctx, fairID)
	require.NoError(t, err)
	require.Len(t, companies, 3)
	require.Equal(t, "first", companies[0].CompanyName)
	require.Equal(t, "second", companies[1].CompanyName)
	require.Equal(t, "third", companies[2].CompanyName)
}

func TestRepository_SearchCompanies(t *testing.T) {
	ctx := context.Background()
	db := newTestCompanyDB(t)
	applyCompanyDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	seed := []types.Company{
		{
			ID:           uuid.New(),
			CareerFairID: fairID,
			CompanyName:  "Acme Robotics",
			Positions:    []string{"Backend Engineer"},
			UserNotes:    "great culture fit",
			Tags:         []string{"robotics"},
		},
		{
			ID:           uuid.New(),
			CareerFairID: fairID,
			CompanyName:  "Globex Analytics",
			Positions:    []string{"Data Engineer"},
			Tags:         []string{"fintech"},
		},
	}
	for _, c := range seed {
		_, err := store.SaveCompany(ctx, c)
		require.NoError(t, err)
	}

	// Name match is case-insensitive.
	hits, err := store.SearchCompanies(ctx, fairID, "ACME")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "Acme Robotics", hits[0].CompanyName)

	// Tag match.
	hits, err = store.SearchCompanies(ctx, fairID, "fintech")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "Globex Analytics", hits[0].CompanyName)

	// Notes match.
	hits, err = store.SearchCompanies(ctx, fairID, "culture")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	// Position match hits both engineers.
	hits, err = store.SearchCompanies(ctx, fairID, "engineer")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	hits, err = store.SearchCompanies(ctx, fairID, "widget")
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestRepository_DeleteCascadesToImages(t *testing.T) {
	ctx := context.Background()
	db := newTestCompanyDB(t)
	applyCompanyDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)
	images, err := image.NewRepository(image.RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	doomed, err := store.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: fairID,
		CompanyName:  "Initech",
	})
	require.NoError(t, err)
	kept, err := store.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: fairID,
		CompanyName:  "Hooli",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := images.SaveImage(ctx, types.ImageRecord{
			ID:        uuid.New(),
			CompanyID: doomed.ID,
			Payload:   []byte{0xff, byte(i)},
			MimeType:  "image/jpeg",
		})
		require.NoError(t, err)
	}
	_, err = images.SaveImage(ctx, types.ImageRecord{
		ID:        uuid.New(),
		CompanyID: kept.ID,
		Payload:   []byte{0x89},
		MimeType:  "image/png",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCompany(ctx, doomed.ID))

	got, err := store.GetCompany(ctx, doomed.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	orphaned, err := images.ListForCompany(ctx, doomed.ID)
	require.NoError(t, err)
	require.Empty(t, orphaned)

	survivors, err := images.ListForCompany(ctx, kept.ID)
	require.NoError(t, err)
	require.Len(t, survivors, 1)
}

func TestRepository_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	db := newTestCompanyDB(t)
	applyCompanyDDL(t, db)

	store, err := NewRepository(RepositoryConfig{DB: db})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCompany(ctx, uuid.New()))
}

func newTestCompanyDB(t *testing.T) *bun.DB {
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

func applyCompanyDDL(t *testing.T, db *bun.DB) {
	content, err := os.ReadFile("../data/sql/migrations/sqlite/000001_career_fair_core.up.sql")
	require.NoError(t, err)
	for _, stmt := range splitCompanyStatements(string(content)) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func splitCompanyStatements(sql string) []string {
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
