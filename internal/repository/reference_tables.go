package repository

var codeColumns = []string{"code", "description"}

func withCode(extra ...string) []string {
	return append(append([]string{}, codeColumns...), extra...)
}

// Reference tables of the student replica schema.
var (
	CapSizeTable               = ReferenceTable{Name: "cap_sizes", Columns: codeColumns}
	GownSizeTable              = ReferenceTable{Name: "gown_sizes", Columns: codeColumns}
	DegreeTable                = ReferenceTable{Name: "degrees", Columns: codeColumns}
	MajorTable                 = ReferenceTable{Name: "majors", Columns: withCode("federal_course_classification", "active")}
	MinorTable                 = ReferenceTable{Name: "minors", Columns: codeColumns}
	ClassLevelTable            = ReferenceTable{Name: "class_levels", Columns: withCode("sort_order"), OrderBy: "sort_order, code"}
	CreditTypeTable            = ReferenceTable{Name: "credit_types", Columns: withCode("category")}
	DropReasonTable            = ReferenceTable{Name: "drop_reasons", Columns: withCode("display_in_self_service")}
	SessionCycleTable          = ReferenceTable{Name: "session_cycles", Columns: codeColumns}
	YearlyCycleTable           = ReferenceTable{Name: "yearly_cycles", Columns: codeColumns}
	GradeSubschemeTable        = ReferenceTable{Name: "grade_subschemes", Columns: withCode("grades")}
	SpecializationTable        = ReferenceTable{Name: "specializations", Columns: codeColumns}
	StudentLoadTable           = ReferenceTable{Name: "student_loads", Columns: withCode("sort_order"), OrderBy: "sort_order, code"}
	TranscriptCategoryTable    = ReferenceTable{Name: "transcript_categories", Columns: codeColumns}
	PetitionStatusTable        = ReferenceTable{Name: "petition_statuses", Columns: withCode("granted")}
	StudentPetitionReasonTable = ReferenceTable{Name: "student_petition_reasons", Columns: codeColumns}
	AttendanceTypeTable        = ReferenceTable{Name: "attendance_types", Columns: withCode("kind")}
)
