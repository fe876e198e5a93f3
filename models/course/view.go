package course

// ModuleContent is a module with its videos and assessments attached, in id order.
type ModuleContent struct {
	Module
	Videos      []Video      `json:"videos"`
	Assessments []Assessment `json:"assessments"`
}

// CourseContent is a course with its module hierarchy. A nil Modules slice
// means the hierarchy has not been loaded yet.
type CourseContent struct {
	Course
	Modules []ModuleContent `json:"modules"`
}

// Read-side projections. Lock state is derived per request and never stored.

type CourseView struct {
	Course
	Subscribed bool         `json:"subscribed"`
	Modules    []ModuleView `json:"modules"`
}

type ModuleView struct {
	Module
	Locked      bool             `json:"locked"`
	Videos      []VideoView      `json:"videos"`
	Assessments []AssessmentView `json:"assessments"`
}

type VideoView struct {
	Video
	Locked bool `json:"locked"`
}

type AssessmentView struct {
	Assessment
	Locked bool `json:"locked"`
}
