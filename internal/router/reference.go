package router

import (
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/handler"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
	"github.com/noah-isme/colleague-student-api/internal/repository"
)

func reference[E models.Coded, D any](pipe *pipeline.Pipeline, db *sqlx.DB, opts repository.ReferenceOptions, table repository.ReferenceTable, res pipeline.Resource, mapFn pipeline.Mapper[E, D]) handler.RouteRegistrar {
	return handler.NewReferenceHandler(pipe, res, repository.NewReferenceRepository[E](db, table, opts), mapFn)
}

// referenceHandlers builds one read-only handler per reference table.
func referenceHandlers(pipe *pipeline.Pipeline, db *sqlx.DB, opts repository.ReferenceOptions) []handler.RouteRegistrar {
	return []handler.RouteRegistrar{
		reference(pipe, db, opts, repository.CapSizeTable, pipeline.Resource{Name: "cap-sizes", Label: "Cap size"}, adapter.CapSize),
		reference(pipe, db, opts, repository.GownSizeTable, pipeline.Resource{Name: "gown-sizes", Label: "Gown size"}, adapter.GownSize),
		reference(pipe, db, opts, repository.DegreeTable, pipeline.Resource{Name: "degrees", Label: "Degree"}, adapter.Degree),
		reference(pipe, db, opts, repository.MajorTable, pipeline.Resource{Name: "majors", Label: "Major"}, adapter.Major),
		reference(pipe, db, opts, repository.MinorTable, pipeline.Resource{Name: "minors", Label: "Minor"}, adapter.Minor),
		reference(pipe, db, opts, repository.ClassLevelTable, pipeline.Resource{Name: "class-levels", Label: "Class level"}, adapter.ClassLevel),
		reference(pipe, db, opts, repository.CreditTypeTable, pipeline.Resource{Name: "credit-types", Label: "Credit type"}, adapter.CreditType),
		reference(pipe, db, opts, repository.DropReasonTable, pipeline.Resource{Name: "drop-reasons", Label: "Drop reason"}, adapter.DropReason),
		reference(pipe, db, opts, repository.SessionCycleTable, pipeline.Resource{Name: "session-cycles", Label: "Session cycle"}, adapter.SessionCycle),
		reference(pipe, db, opts, repository.YearlyCycleTable, pipeline.Resource{Name: "yearly-cycles", Label: "Yearly cycle"}, adapter.YearlyCycle),
		reference(pipe, db, opts, repository.GradeSubschemeTable, pipeline.Resource{Name: "grade-subschemes", Label: "Grade subscheme"}, adapter.GradeSubscheme),
		reference(pipe, db, opts, repository.SpecializationTable, pipeline.Resource{Name: "specializations", Label: "Specialization"}, adapter.Specialization),
		reference(pipe, db, opts, repository.StudentLoadTable, pipeline.Resource{Name: "student-loads", Label: "Student load"}, adapter.StudentLoad),
		reference(pipe, db, opts, repository.TranscriptCategoryTable, pipeline.Resource{Name: "transcript-categories", Label: "Transcript category"}, adapter.TranscriptCategory),
		reference(pipe, db, opts, repository.PetitionStatusTable, pipeline.Resource{Name: "petition-statuses", Label: "Petition status"}, adapter.PetitionStatus),
		reference(pipe, db, opts, repository.StudentPetitionReasonTable, pipeline.Resource{Name: "student-petition-reasons", Label: "Student petition reason"}, adapter.StudentPetitionReason),
		reference(pipe, db, opts, repository.AttendanceTypeTable, pipeline.Resource{Name: "attendance-types", Label: "Attendance type"}, adapter.AttendanceType),
	}
}
