package models

import "strings"

// NormalizeJob returns a job with every text field populated and the apply
// link collapsed to a single attribute. Historical records used apply_link,
// apply_url or redirect_url depending on the ingestion source; the first
// non-empty one in that order wins.
func NormalizeJob(j Job) Job {
	link := j.ApplyLink
	if link == "" {
		link = j.ApplyURL
	}
	if link == "" {
		link = j.RedirectURL
	}

	return Job{
		JobID:       strings.TrimSpace(j.JobID),
		Title:       strings.TrimSpace(j.Title),
		Description: strings.TrimSpace(j.Description),
		Company:     strings.TrimSpace(j.Company),
		Location:    strings.TrimSpace(j.Location),
		ApplyLink:   link,
	}
}

// NormalizeCandidate resolves the display name from the historical column
// variants: name, then full_name, then first_name + last_name.
func NormalizeCandidate(c Candidate) Candidate {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = strings.TrimSpace(c.FullName)
	}
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	}

	return Candidate{
		CandidateID: strings.TrimSpace(c.CandidateID),
		Name:        name,
		Email:       strings.TrimSpace(c.Email),
		ResumeText:  strings.TrimSpace(c.ResumeText),
	}
}

// Text returns the full scorable text of a job: title plus description.
func (j Job) Text() string {
	if j.Title == "" {
		return j.Description
	}
	if j.Description == "" {
		return j.Title
	}
	return j.Title + " " + j.Description
}
