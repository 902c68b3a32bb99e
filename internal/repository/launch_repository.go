package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "strings"

    "brandtruth/internal/interfaces"
    "brandtruth/internal/models"
)

type launchRepository struct {
    db *sql.DB
}

func NewLaunchRepository(db *sql.DB) interfaces.LaunchRepository {
    return &launchRepository{db: db}
}

func (r *launchRepository) Create(ctx context.Context, launch *models.Launch) error {
    query := `
        INSERT INTO launches (
            session_id, url, brand_name, variant_id, headline,
            meta_campaign_id, daily_budget, status, demo, published_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `

    return r.db.QueryRowContext(
        ctx,
        query,
        launch.SessionID,
        launch.URL,
        launch.BrandName,
        launch.VariantID,
        launch.Headline,
        launch.MetaCampaignID,
        launch.DailyBudget,
        launch.Status,
        launch.Demo,
        launch.PublishedAt,
    ).Scan(&launch.ID, &launch.CreatedAt, &launch.UpdatedAt)
}

func (r *launchRepository) GetByID(ctx context.Context, id string) (*models.Launch, error) {
    query := `
        SELECT
            id, session_id, url, brand_name, variant_id, headline,
            meta_campaign_id, daily_budget, status, demo, published_at,
            created_at, updated_at
        FROM launches
        WHERE id = $1
    `

    var launch models.Launch
    err := r.db.QueryRowContext(ctx, query, id).Scan(
        &launch.ID,
        &launch.SessionID,
        &launch.URL,
        &launch.BrandName,
        &launch.VariantID,
        &launch.Headline,
        &launch.MetaCampaignID,
        &launch.DailyBudget,
        &launch.Status,
        &launch.Demo,
        &launch.PublishedAt,
        &launch.CreatedAt,
        &launch.UpdatedAt,
    )

    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, sql.ErrNoRows
        }
        return nil, err
    }

    return &launch, nil
}

// List retrieves launches most recent first, filtered and paginated.
func (r *launchRepository) List(ctx context.Context, filter interfaces.LaunchFilter) ([]*models.Launch, error) {
    query := `
        SELECT
            id, session_id, url, brand_name, variant_id, headline,
            meta_campaign_id, daily_budget, status, demo, published_at,
            created_at, updated_at
        FROM launches
        WHERE 1=1
    `

    query, args := appendLaunchFilters(query, filter)
    argPos := len(args) + 1

    query += " ORDER BY published_at DESC"

    if filter.Limit > 0 {
        query += fmt.Sprintf(" LIMIT $%d", argPos)
        args = append(args, filter.Limit)
        argPos++
    }
    if filter.Offset > 0 {
        query += fmt.Sprintf(" OFFSET $%d", argPos)
        args = append(args, filter.Offset)
    }

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var launches []*models.Launch
    for rows.Next() {
        var launch models.Launch
        err := rows.Scan(
            &launch.ID,
            &launch.SessionID,
            &launch.URL,
            &launch.BrandName,
            &launch.VariantID,
            &launch.Headline,
            &launch.MetaCampaignID,
            &launch.DailyBudget,
            &launch.Status,
            &launch.Demo,
            &launch.PublishedAt,
            &launch.CreatedAt,
            &launch.UpdatedAt,
        )
        if err != nil {
            return nil, err
        }
        launches = append(launches, &launch)
    }

    return launches, rows.Err()
}

func (r *launchRepository) Summary(ctx context.Context, filter interfaces.LaunchFilter) (*models.LaunchSummary, error) {
    query := `
        SELECT
            COALESCE(SUM(CASE WHEN status = 'live' THEN 1 ELSE 0 END), 0) AS live_launch_count,
            COALESCE(SUM(CASE WHEN status = 'live' THEN daily_budget ELSE 0 END), 0) AS total_daily_budget,
            COALESCE(SUM(CASE WHEN demo THEN 1 ELSE 0 END), 0) AS demo_launch_count
        FROM launches
        WHERE 1=1
    `

    query, args := appendLaunchFilters(query, filter)

    var summary models.LaunchSummary
    if err := r.db.QueryRowContext(ctx, query, args...).Scan(
        &summary.LiveLaunchCount,
        &summary.TotalDailyBudget,
        &summary.DemoLaunchCount,
    ); err != nil {
        return nil, err
    }

    return &summary, nil
}

func appendLaunchFilters(query string, filter interfaces.LaunchFilter) (string, []interface{}) {
    var args []interface{}
    var whereClauses []string
    argPos := 1

    if filter.Status != "" {
        whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argPos))
        args = append(args, filter.Status)
        argPos++
    }

    if filter.Demo != nil {
        whereClauses = append(whereClauses, fmt.Sprintf("demo = $%d", argPos))
        args = append(args, *filter.Demo)
        argPos++
    }

    if !filter.PublishedFrom.IsZero() {
        whereClauses = append(whereClauses, fmt.Sprintf("published_at >= $%d", argPos))
        args = append(args, filter.PublishedFrom)
        argPos++
    }

    if !filter.PublishedTo.IsZero() {
        whereClauses = append(whereClauses, fmt.Sprintf("published_at <= $%d", argPos))
        args = append(args, filter.PublishedTo)
        argPos++
    }

    if len(whereClauses) > 0 {
        query += " AND " + strings.Join(whereClauses, " AND ")
    }

    return query, args
}
