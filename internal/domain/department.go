package domain

import "strings"

// Department is the closed set of school departments.
type Department string

const (
	DepartmentITExpert           Department = "IT_EXPERT"
	DepartmentITSpecialist       Department = "IT_SPECIALIST"
	DepartmentInformationProcess Department = "INFORMATION_PROCESS"
	DepartmentProgramming        Department = "PROGRAMMING"
	DepartmentAISystem           Department = "AI_SYSTEM"
	DepartmentAdvancedStudies    Department = "ADVANCED_STUDIES"
	DepartmentInfoBusiness       Department = "INFO_BUSINESS"
	DepartmentInfoEngineering    Department = "INFO_ENGINEERING"
	DepartmentGameResearch       Department = "GAME_RESEARCH"
	DepartmentGameEngineer       Department = "GAME_ENGINEER"
	DepartmentGameSoftware       Department = "GAME_SOFTWARE"
	DepartmentEsports            Department = "ESPORTS"
	DepartmentCGAnimation        Department = "CG_ANIMATION"
	DepartmentDigitalAnime       Department = "DIGITAL_ANIME"
	DepartmentGraphicDesign      Department = "GRAPHIC_DESIGN"
	DepartmentIndustrialDesign   Department = "INDUSTRIAL_DESIGN"
	DepartmentArchitectural      Department = "ARCHITECTURAL"
	DepartmentSoundCreate        Department = "SOUND_CREATE"
	DepartmentSoundTechnique     Department = "SOUND_TECHNIQUE"
	DepartmentVoiceActor         Department = "VOICE_ACTOR"
	DepartmentInternationalComm  Department = "INTERNATIONAL_COMM"
	DepartmentOthers             Department = "OTHERS"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentITExpert,
	DepartmentITSpecialist,
	DepartmentInformationProcess,
	DepartmentProgramming,
	DepartmentAISystem,
	DepartmentAdvancedStudies,
	DepartmentInfoBusiness,
	DepartmentInfoEngineering,
	DepartmentGameResearch,
	DepartmentGameEngineer,
	DepartmentGameSoftware,
	DepartmentEsports,
	DepartmentCGAnimation,
	DepartmentDigitalAnime,
	DepartmentGraphicDesign,
	DepartmentIndustrialDesign,
	DepartmentArchitectural,
	DepartmentSoundCreate,
	DepartmentSoundTechnique,
	DepartmentVoiceActor,
	DepartmentInternationalComm,
	DepartmentOthers,
}

var departmentSet = func() map[Department]struct{} {
	set := make(map[Department]struct{}, len(Departments))
	for _, d := range Departments {
		set[d] = struct{}{}
	}
	return set
}()

// IsValid reports whether d is one of the known departments.
func (d Department) IsValid() bool {
	_, ok := departmentSet[d]
	return ok
}

// ParseDepartment converts raw input into a Department.
// Input is trimmed and upper-cased before matching.
func ParseDepartment(raw string) (Department, bool) {
	d := Department(strings.ToUpper(strings.TrimSpace(raw)))
	if !d.IsValid() {
		return "", false
	}
	return d, true
}

// DurationYears returns the fixed program length of the department.
// Client supplied durations are never trusted; this mapping is authoritative.
//
//   - 4 years: IT_EXPERT, GAME_RESEARCH
//   - 3 years: IT_SPECIALIST, GAME_ENGINEER
//   - 1 year:  ADVANCED_STUDIES
//   - 2 years: everything else
func (d Department) DurationYears() int {
	switch d {
	case DepartmentITExpert, DepartmentGameResearch:
		return 4
	case DepartmentITSpecialist, DepartmentGameEngineer:
		return 3
	case DepartmentAdvancedStudies:
		return 1
	default:
		return 2
	}
}
