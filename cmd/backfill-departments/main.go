package main

import (
	"context"
	"fmt"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/database"
	"github.com/campuslink/campuslink-backend/internal/logger"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/google/uuid"
)

// Recomputes the department of every catalog row from its class code. Run
// after extending the prefix lookup table so old rows pick up the new names.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	classRepo := repository.NewClassRepository(pool)

	fmt.Println("=== Backfill Class Departments ===")

	rows, err := pool.Query(ctx, "SELECT id, class_code, department FROM classes")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to query classes")
	}
	defer rows.Close()

	type classRow struct {
		ID         uuid.UUID
		Code       string
		Department string
	}
	var classes []classRow
	for rows.Next() {
		var row classRow
		if err := rows.Scan(&row.ID, &row.Code, &row.Department); err != nil {
			log.Fatal().Err(err).Msg("Failed to scan class")
		}
		classes = append(classes, row)
	}
	if err := rows.Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read classes")
	}

	updated := 0
	for _, row := range classes {
		derived := service.DepartmentForCode(row.Code)
		if derived == "" || derived == row.Department {
			continue
		}
		if err := classRepo.UpdateDepartment(ctx, row.ID, derived); err != nil {
			fmt.Printf("Error updating %s: %v\n", row.Code, err)
			continue
		}
		updated++
	}

	fmt.Printf("\nBackfill completed! Updated %d/%d classes.\n", updated, len(classes))
}
