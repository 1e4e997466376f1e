package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/database"
	"github.com/campuslink/campuslink-backend/internal/logger"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/schedule"
	"github.com/campuslink/campuslink-backend/internal/service"
	"github.com/jackc/pgx/v5"
)

// Seeds a demo campus with a small course catalog, for local development and
// the mobile client's preview builds.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	universityRepo := repository.NewUniversityRepository(pool)
	classRepo := repository.NewClassRepository(pool)

	fmt.Println("=== Seeding Demo Catalog ===")

	campus, err := universityRepo.GetByEmailDomain(ctx, "demo.edu")
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Fatal().Err(err).Msg("Failed to check existing university")
		}
		fmt.Println("Demo University not found. Creating it...")
		campus = &model.University{
			Name:        "Demo University",
			EmailDomain: "demo.edu",
		}
		if err := universityRepo.Create(ctx, campus); err != nil {
			log.Fatal().Err(err).Msg("Failed to create university")
		}
		fmt.Printf("Created university with ID: %s\n", campus.ID)
	} else {
		fmt.Printf("Found existing university with ID: %s\n", campus.ID)
	}

	courses := []struct {
		Code string
		Name string
	}{
		{"CS 101", "Introduction to Computer Science"},
		{"CS 201", "Data Structures"},
		{"CS 310", "Operating Systems"},
		{"MATH 221", "Linear Algebra"},
		{"MATH 140", "Calculus I"},
		{"PHYS 211", "Classical Mechanics"},
		{"CHEM 101", "General Chemistry"},
		{"BIOL 120", "Principles of Biology"},
		{"ENGL 110", "College Writing"},
		{"HIST 150", "World History"},
		{"PSYC 100", "Introduction to Psychology"},
		{"ECON 201", "Microeconomics"},
		{"STAT 200", "Statistical Reasoning"},
		{"PHIL 101", "Introduction to Philosophy"},
		{"SPAN 101", "Elementary Spanish"},
	}

	successCount := 0
	for _, course := range courses {
		normalized := schedule.NormalizeClassCode(course.Code)

		existing, err := classRepo.FindByCode(ctx, campus.ID, course.Code, normalized)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			fmt.Printf("Error checking %s: %v\n", course.Code, err)
			continue
		}
		if existing != nil {
			continue
		}

		class := &model.Class{
			UniversityID: campus.ID,
			ClassCode:    normalized,
			ClassName:    course.Name,
			Department:   service.DepartmentForCode(normalized),
		}
		if err := classRepo.Create(ctx, class); err != nil {
			fmt.Printf("Error creating class %s: %v\n", course.Code, err)
		} else {
			successCount++
		}
	}

	fmt.Printf("\nSeed completed! Added %d/%d classes.\n", successCount, len(courses))
}
