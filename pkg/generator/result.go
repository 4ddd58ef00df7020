package generator

// Result holds the code produced by each step of a run.
// A failed run returns the steps that completed; later fields stay empty.
type Result struct {
	Basic      string
	Documented string
	Tested     string

	// Completed is the last stage reached. StageDone once every step succeeded.
	Completed Stage
}

func (r *Result) record(stage Stage, code string) {
	switch stage {
	case StageImplement:
		r.Basic = code
	case StageDocument:
		r.Documented = code
	case StageTest:
		r.Tested = code
	}
	r.Completed = stage
}

// Final returns the fully tested code.
func (r *Result) Final() string {
	return r.Tested
}

// Done reports whether all three steps completed.
func (r *Result) Done() bool {
	return r.Completed == StageDone
}
