package manufacturing

// FiveWhys is one root cause analysis.
type FiveWhys struct {
	AnalysisID       string `json:"analysis_id" validate:"required"`
	RelatedEventID   string `json:"related_event_id" validate:"required"`
	ProblemStatement string `json:"problem_statement" validate:"required"`
	Why1             string `json:"why_1" validate:"required"`
	Why2             string `json:"why_2" validate:"required"`
	Why3             string `json:"why_3" validate:"required"`
	Why4             string `json:"why_4" validate:"required"`
	Why5             string `json:"why_5" validate:"required"`
	CorrectiveAction string `json:"corrective_action" validate:"required"`
	Status           string `json:"status" validate:"required"`
}

var FiveWhysColumns = []string{
	"analysis_id",
	"related_event_id",
	"problem_statement",
	"why_1",
	"why_2",
	"why_3",
	"why_4",
	"why_5",
	"corrective_action",
	"status",
}

func (f FiveWhys) Record() map[string]any {
	return map[string]any{
		"analysis_id":       f.AnalysisID,
		"related_event_id":  f.RelatedEventID,
		"problem_statement": f.ProblemStatement,
		"why_1":             f.Why1,
		"why_2":             f.Why2,
		"why_3":             f.Why3,
		"why_4":             f.Why4,
		"why_5":             f.Why5,
		"corrective_action": f.CorrectiveAction,
		"status":            f.Status,
	}
}
