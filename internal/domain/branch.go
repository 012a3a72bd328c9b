package domain

// BranchAttempt records one probe against a candidate branch.
type BranchAttempt struct {
	Branch         string
	Classification Classification
}

// BranchResolution is the outcome of probing an ordered candidate list.
// Constructed once per resolution and discarded after the caller consumes it.
type BranchResolution struct {
	RequestedBranch string
	UsedBranch      string
	Succeeded       bool
	// FellBack is set when the lookup succeeded on a branch other than the
	// one the caller asked for.
	FellBack bool
	Attempts []BranchAttempt
	Result   Result
}

// LastClassification returns the classification of the final attempt, or
// ClassUnknown when nothing was attempted.
func (r BranchResolution) LastClassification() Classification {
	if len(r.Attempts) == 0 {
		return ClassUnknown
	}
	return r.Attempts[len(r.Attempts)-1].Classification
}

// AttemptedBranches lists the branch names probed, in order.
func (r BranchResolution) AttemptedBranches() []string {
	names := make([]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		names = append(names, a.Branch)
	}
	return names
}

// BranchCandidates builds the ordered probe list: the requested branch
// first, then the convention list, with duplicates removed. Order is
// significant and preserved.
func BranchCandidates(requested string, conventions []string) []string {
	seen := make(map[string]bool, len(conventions)+1)
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	add(requested)
	for _, name := range conventions {
		add(name)
	}
	return out
}
