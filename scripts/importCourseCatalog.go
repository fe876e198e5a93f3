package main

import (
	"cdax/config"
	"cdax/database"
	"cdax/logger"
	courseModels "cdax/models/course"
	"cdax/repositories"
	"cdax/services"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Rows sharing a course_title belong to one course, rows sharing a
// module_title within it to one module. video_title may be empty for
// modules without videos.
var catalogColumns = []string{"course_title", "module_title"}

type importStats struct {
	Courses int
	Modules int
	Videos  int
	Skipped int
}

type catalogWriter interface {
	CreateCourse(ctx context.Context, course *courseModels.Course) (*courseModels.Course, error)
	AddModule(ctx context.Context, courseID uint, module *courseModels.Module) (*courseModels.Module, error)
	AddVideo(ctx context.Context, moduleID uint, video *courseModels.Video) (*courseModels.Video, error)
}

func main() {
	path := "CourseCatalog.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg := config.LoadConfig()
	baseLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer baseLog.Sync()

	db, err := database.ConnectDb(cfg, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to connect to the database", "error", err)
	}
	defer db.Close()

	file, err := os.Open(path)
	if err != nil {
		baseLog.Fatal("Failed to open CSV file", "path", path, "error", err)
	}
	defer file.Close()

	content := services.NewContentService(services.ContentRepos{
		Courses:     repositories.NewCourseRepo(db.Db, baseLog),
		Modules:     repositories.NewModuleRepo(db.Db, baseLog),
		Videos:      repositories.NewVideoRepo(db.Db, baseLog),
		Assessments: repositories.NewAssessmentRepo(db.Db, baseLog),
		Questions:   repositories.NewQuestionRepo(db.Db, baseLog),
	}, services.NewPurchaseService(
		repositories.NewPurchaseRepo(db.Db, baseLog),
		repositories.NewPendingOrderRepo(db.Db, baseLog),
		services.PurchaseSettings{DefaultPrice: cfg.DefaultCoursePrice, Currency: cfg.Currency},
		baseLog,
	), baseLog)

	stats, err := importCatalog(context.Background(), file, content, baseLog)
	if err != nil {
		baseLog.Fatal("Import failed", "error", err)
	}

	baseLog.Info("Import complete",
		"courses", stats.Courses,
		"modules", stats.Modules,
		"videos", stats.Videos,
		"skipped", stats.Skipped,
	)
}

func importCatalog(ctx context.Context, r io.Reader, content catalogWriter, log *logger.Logger) (importStats, error) {
	var stats importStats

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return stats, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return stats, fmt.Errorf("csv file is empty or has only headers")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, column := range catalogColumns {
		if _, ok := headerIndex[column]; !ok {
			return stats, fmt.Errorf("missing column %q", column)
		}
	}

	courseIDs := make(map[string]uint)
	moduleIDs := make(map[string]uint)

	for i, row := range records[1:] {
		courseTitle := getField(row, headerIndex, "course_title")
		moduleTitle := getField(row, headerIndex, "module_title")
		if courseTitle == "" || moduleTitle == "" {
			log.Warn("Skipping row without course or module title", "row", i+2)
			stats.Skipped++
			continue
		}

		courseID, ok := courseIDs[courseTitle]
		if !ok {
			course, err := content.CreateCourse(ctx, &courseModels.Course{
				Title:        courseTitle,
				Description:  getField(row, headerIndex, "course_description"),
				Author:       getField(row, headerIndex, "author"),
				ThumbnailURL: getField(row, headerIndex, "thumbnail_url"),
				Price:        parseFloat(getField(row, headerIndex, "price")),
			})
			if err != nil {
				return stats, fmt.Errorf("row %d: %w", i+2, err)
			}
			courseID = course.ID
			courseIDs[courseTitle] = courseID
			stats.Courses++
		}

		moduleKey := courseTitle + "\x00" + moduleTitle
		moduleID, ok := moduleIDs[moduleKey]
		if !ok {
			module, err := content.AddModule(ctx, courseID, &courseModels.Module{
				Title:       moduleTitle,
				Description: getField(row, headerIndex, "module_description"),
			})
			if err != nil {
				return stats, fmt.Errorf("row %d: %w", i+2, err)
			}
			moduleID = module.ID
			moduleIDs[moduleKey] = moduleID
			stats.Modules++
		}

		videoTitle := getField(row, headerIndex, "video_title")
		if videoTitle == "" {
			continue
		}
		if _, err := content.AddVideo(ctx, moduleID, &courseModels.Video{
			Title:    videoTitle,
			VideoURL: getField(row, headerIndex, "video_url"),
			Duration: parseInt(getField(row, headerIndex, "duration")),
		}); err != nil {
			return stats, fmt.Errorf("row %d: %w", i+2, err)
		}
		stats.Videos++
	}

	return stats, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
