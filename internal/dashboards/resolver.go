package dashboards

// Resolve turns a deletion request and a freshly fetched listing into the
// final ordered set of target ids. Duplicates are dropped while preserving
// first-seen order; an empty result means "nothing to do" and is not an
// error. In non-force mode an invalid pattern aborts resolution entirely; in
// force mode it is skipped with an error line and the remaining patterns
// still run.
func Resolve(req DeletionRequest, listing []Summary, out Output) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var ids []string
	switch req.Mode {
	case ModeAll:
		for _, d := range listing {
			ids = append(ids, d.ID)
		}
	case ModeTitlePattern:
		for _, pattern := range req.Identifiers {
			re, err := CompilePattern(pattern)
			if err != nil {
				if !req.Force {
					return nil, err
				}
				out.Errorf("Skipping invalid pattern %q: %v", pattern, err)
				continue
			}
			matches := MatchTitles(re, listing)
			if len(matches) == 0 {
				out.Warnf("No dashboards found matching pattern: %s", pattern)
				continue
			}
			ids = append(ids, matches...)
		}
	case ModeExplicitIDs:
		// No existence check against the listing here: a stale or mistyped
		// id surfaces as a per-item failure at deletion time.
		ids = append(ids, req.Identifiers...)
	}

	unique := dedupe(ids)
	if dropped := len(ids) - len(unique); dropped > 0 {
		out.Infof("Found %d duplicate dashboard id(s). Will process only unique ids.", dropped)
	}
	return unique, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
