package charts

// CheckResult is the outcome of validating one artifact.
type CheckResult struct {
	Name   string
	Traces int
	Err    error
}

// OK reports whether the artifact loaded cleanly.
func (r CheckResult) OK() bool { return r.Err == nil }

// Check loads every artifact in the assets directory and reports each one.
// Unlike a page render it does not stop at the first bad artifact.
// progress, if non-nil, is called after each artifact with a 1-based index.
func (l *Loader) Check(progress func(done int, name string)) ([]CheckResult, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	results := make([]CheckResult, 0, len(names))
	for i, name := range names {
		res := CheckResult{Name: name}
		c, err := l.LoadChart(name)
		if err != nil {
			res.Err = err
		} else {
			res.Traces = len(c.Data)
		}
		results = append(results, res)
		if progress != nil {
			progress(i+1, name)
		}
	}
	return results, nil
}
