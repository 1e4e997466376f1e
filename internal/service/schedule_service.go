package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/ocr"
	"github.com/campuslink/campuslink-backend/internal/repository"
	"github.com/campuslink/campuslink-backend/internal/schedule"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Schedule import errors.
var (
	ErrUnsupportedFile = errors.New("unsupported schedule file type")
	ErrScheduleEmpty   = errors.New("no classes recognized in the schedule")
	ErrOCRUnavailable  = errors.New("text recognition is unavailable")
)

// ScheduleService turns uploaded schedules into confirmed enrollments. It is
// the onboarding pipeline: parse (file, photo or manual entry), preview,
// confirm.
type ScheduleService struct {
	ocrAdapter  *ocr.Adapter
	catalog     *CatalogService
	enrollments *EnrollmentService
	users       *repository.UserRepository
	log         zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(ocrAdapter *ocr.Adapter, catalog *CatalogService, enrollments *EnrollmentService, users *repository.UserRepository) *ScheduleService {
	return &ScheduleService{
		ocrAdapter:  ocrAdapter,
		catalog:     catalog,
		enrollments: enrollments,
		users:       users,
		log:         log.With().Str("component", "schedule_service").Logger(),
	}
}

// ImportFile parses an uploaded .ics or .csv schedule into a preview. The
// format is chosen by file extension; anything else is rejected before
// parsing.
func (s *ScheduleService) ImportFile(filename string, content []byte) (*model.SchedulePreview, error) {
	var records []schedule.ClassRecord
	var source string

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ics", ".ical":
		records = schedule.ParseICal(string(content))
		source = "ical"
	case ".csv":
		records = schedule.ParseCSV(string(content))
		source = "csv"
	default:
		return nil, ErrUnsupportedFile
	}

	drafts := schedule.DraftsFromRecords(records)
	if len(drafts) == 0 {
		return nil, ErrScheduleEmpty
	}
	return buildPreview(source, drafts), nil
}

// ImportPhoto runs text recognition on a schedule photo and structures the
// result. Recognition being unavailable is reported as ErrOCRUnavailable so
// the client can fall back to file upload or manual entry.
func (s *ScheduleService) ImportPhoto(ctx context.Context, imagePath string) (*model.SchedulePreview, error) {
	extraction := s.ocrAdapter.ExtractText(ctx, imagePath)
	if extraction.Status != ocr.StatusOK {
		return nil, ErrOCRUnavailable
	}

	drafts := schedule.StructureText(extraction.RawText)
	if len(drafts) == 0 {
		return nil, ErrScheduleEmpty
	}
	s.log.Info().
		Int("courses", len(drafts)).
		Int("blocks", len(extraction.Blocks)).
		Msg("Schedule photo structured")
	return buildPreview("photo", drafts), nil
}

// PreviewManual wraps hand-entered drafts in the same preview shape the
// parser paths produce, so the confirmation step is uniform.
func (s *ScheduleService) PreviewManual(drafts []schedule.CourseDraft) (*model.SchedulePreview, error) {
	if len(drafts) == 0 {
		return nil, ErrScheduleEmpty
	}
	return buildPreview("manual", drafts), nil
}

// Confirm resolves each draft against the catalog, enrolls the user and
// marks them onboarded. Chat-eligible courses are queued for group chat
// provisioning. A draft that fails to match aborts the run: partial
// confirmations would leave the preview and the schedule out of sync.
func (s *ScheduleService) Confirm(ctx context.Context, userID uuid.UUID, req *model.ConfirmScheduleRequest) (*model.ConfirmScheduleResult, error) {
	result := &model.ConfirmScheduleResult{}

	for _, draft := range req.Courses {
		semester := draft.Semester
		if semester == "" {
			semester = req.Semester
		}

		matched, err := s.catalog.MatchClass(ctx, userID, matchRequestFromDraft(draft, semester))
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", draft.Code, err)
		}

		chatEligible := draft.ChatEligible()
		enrollment, created, err := s.enrollments.Enroll(ctx, userID, matched.ClassID, matched.SectionID, semester, "", chatEligible)
		if err != nil {
			return nil, fmt.Errorf("enroll %s: %w", draft.Code, err)
		}

		result.Courses = append(result.Courses, model.ConfirmedCourse{
			Code:        draft.Code,
			MatchResult: matched.Class,
			Enrollment:  *enrollment,
			NewlyAdded:  created,
			ChatQueued:  created && chatEligible,
		})
	}

	if err := s.users.MarkOnboarded(ctx, userID); err != nil {
		return nil, fmt.Errorf("mark onboarded: %w", err)
	}
	result.Onboarded = true

	s.log.Info().
		Str("user_id", userID.String()).
		Int("courses", len(result.Courses)).
		Msg("Schedule confirmed")
	return result, nil
}

func buildPreview(source string, drafts []schedule.CourseDraft) *model.SchedulePreview {
	sectionCourses, metadataCourses := schedule.Partition(drafts)
	return &model.SchedulePreview{
		Source:          source,
		SectionCourses:  sectionCourses,
		MetadataCourses: metadataCourses,
	}
}

// matchRequestFromDraft flattens a draft for catalog matching. The first
// lecture component supplies the section metadata; a course with no lecture
// falls back to its first component.
func matchRequestFromDraft(draft schedule.CourseDraft, semester string) *model.MatchClassRequest {
	req := &model.MatchClassRequest{
		ClassCode: draft.Code,
		ClassName: draft.Name,
		Professor: draft.Professor,
		Semester:  semester,
	}

	var comp *schedule.ComponentDraft
	for i := range draft.Components {
		if draft.Components[i].Type == schedule.ComponentLecture {
			comp = &draft.Components[i]
			break
		}
	}
	if comp == nil && len(draft.Components) > 0 {
		comp = &draft.Components[0]
	}
	if comp != nil {
		req.Days = comp.Days
		req.StartTime = comp.StartTime
		req.EndTime = comp.EndTime
		req.Location = comp.Location
	}
	return req
}
