package query

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fairbuddy/go-fairbuddy/checklist"
	"github.com/fairbuddy/go-fairbuddy/company"
	"github.com/fairbuddy/go-fairbuddy/fair"
	"github.com/fairbuddy/go-fairbuddy/pkg/types"
	"github.com/fairbuddy/go-fairbuddy/settings"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestCompanySearchQuery_EmptyQueryReturnsAll(t *testing.T) {
	ctx := context.Background()
	db := newTestQueryDB(t)
	applyQueryDDL(t, db)

	companies, err := company.NewRepository(company.RepositoryConfig{DB: db})
	require.NoError(t, err)

	fairID := uuid.New()
	for _, name := range []string{"Acme", "Globex"} {
		_, err := companies.SaveCompany(ctx, types.Company{
			ID:           uuid.New(),
			CareerFairID: fairID,
			CompanyName:  name,
		})
		require.NoError(t, err)
	}

	q := NewCompanySearchQuery(companies)

	all, err := q.Query(ctx, CompanySearchInput{CareerFairID: fairID, Query: "   "})
	require.NoError(t, err)
	require.Len(t, all, 2)

	hits, err := q.Query(ctx, CompanySearchInput{CareerFairID: fairID, Query: "glob"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "Globex", hits[0].CompanyName)
}

func TestFollowUpQueueQuery(t *testing.T) {
	ctx := context.Background()
	db := newTestQueryDB(t)
	applyQueryDDL(t, db)

	fairs, err := fair.NewRepository(fair.RepositoryConfig{DB: db})
	require.NoError(t, err)
	companies, err := company.NewRepository(company.RepositoryConfig{DB: db})
	require.NoError(t, err)

	late, err := fairs.SaveFair(ctx, types.CareerFair{
		ID:   uuid.New(),
		Name: "late fair",
		Date: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	early, err := fairs.SaveFair(ctx, types.CareerFair{
		ID:   uuid.New(),
		Name: "early fair",
		Date: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = companies.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: early.ID,
		CompanyName:  "Pending Corp",
	})
	require.NoError(t, err)
	_, err = companies.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: late.ID,
		CompanyName:  "Done Inc",
		FollowUpStatus: types.FollowUpStatus{
			ThankYouSent:         true,
			ApplicationSubmitted: true,
			LinkedInConnected:    true,
			InterviewScheduled:   true,
		},
	})
	require.NoError(t, err)
	_, err = companies.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: late.ID,
		CompanyName:  "Still Open LLC",
	})
	require.NoError(t, err)

	q := NewFollowUpQueueQuery(fairs, companies)
	queue, err := q.Query(ctx, FollowUpQueueInput{})
	require.NoError(t, err)
	require.Len(t, queue, 2)
	// Entries follow fair date order.
	require.Equal(t, "Pending Corp", queue[0].Company.CompanyName)
	require.Equal(t, "early fair", queue[0].Fair.Name)
	require.Equal(t, "Still Open LLC", queue[1].Company.CompanyName)
}

func TestDashboardStatsQuery(t *testing.T) {
	ctx := context.Background()
	db := newTestQueryDB(t)
	applyQueryDDL(t, db)

	fairs, err := fair.NewRepository(fair.RepositoryConfig{DB: db})
	require.NoError(t, err)
	companies, err := company.NewRepository(company.RepositoryConfig{DB: db})
	require.NoError(t, err)
	items, err := checklist.NewRepository(checklist.RepositoryConfig{DB: db})
	require.NoError(t, err)

	f, err := fairs.SaveFair(ctx, types.CareerFair{
		ID:   uuid.New(),
		Name: "stats fair",
		Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = companies.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: f.ID,
		CompanyName:  "High Priority Co",
		Priority:     types.PriorityHigh,
	})
	require.NoError(t, err)
	_, err = companies.SaveCompany(ctx, types.Company{
		ID:           uuid.New(),
		CareerFairID: f.ID,
		CompanyName:  "Low Priority Co",
		Priority:     types.PriorityLow,
	})
	require.NoError(t, err)

	done := true
	for i := 0; i < 3; i++ {
		_, err := items.SaveItem(ctx, types.ChecklistItem{
			ID:           uuid.New(),
			CareerFairID: f.ID,
			Text:         "task",
			IsCompleted:  done,
			Order:        i,
		})
		require.NoError(t, err)
		done = false
	}

	q := NewDashboardStatsQuery(fairs, companies, items)
	stats, err := q.Query(ctx, DashboardStatsInput{})
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalFairs)
	require.Equal(t, 2, stats.TotalCompanies)
	require.Equal(t, 1, stats.HighPriorityCompanies)
	require.Equal(t, 2, stats.PendingFollowUps)
	require.Equal(t, 3, stats.ChecklistItemsTotal)
	require.Equal(t, 1, stats.ChecklistItemsComplete)
}

func TestSettingsDetailQuery_Masked(t *testing.T) {
	ctx := context.Background()
	db := newTestQueryDB(t)
	applyQueryDDL(t, db)

	repo, err := settings.NewRepository(settings.RepositoryConfig{DB: db})
	require.NoError(t, err)

	_, err = repo.SaveSettings(ctx, types.Settings{
		Name:              "Jordan Kim",
		OpenAIAPIKey:      "sk-super-secret-key",
		DefaultScanMethod: types.ScanMethodOCR,
	})
	require.NoError(t, err)

	q := NewSettingsDetailQuery(repo, settings.DefaultMasker())

	raw, err := q.Query(ctx, SettingsDetailInput{})
	require.NoError(t, err)
	require.NotNil(t, raw)
	require.Equal(t, "sk-super-secret-key", raw.OpenAIAPIKey)

	masked, err := q.Query(ctx, SettingsDetailInput{Masked: true})
	require.NoError(t, err)
	require.NotNil(t, masked)
	require.NotContains(t, masked.OpenAIAPIKey, "super-secret")
}

func newTestQueryDB(t *testing.T) *bun.DB {
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

func applyQueryDDL(t *testing.T, db *bun.DB) {
	content, err := os.ReadFile("../data/sql/migrations/sqlite/000001_career_fair_core.up.sql")
	require.NoError(t, err)
	for _, stmt := range splitQueryStatements(string(content)) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func splitQueryStatements(sql string) []string {
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
