package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/dreamjobs/portal/config"
	"github.com/dreamjobs/portal/models"
	"github.com/dreamjobs/portal/notify"
)

func TestEmployerJobsAndApplications(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("jobs@example.com", models.RoleEmployer, "secret1")
	cand := env.user("dev@example.com", models.RoleCandidate, "secret1")
	et, ct := env.token(emp), env.token(cand)

	job := env.createJob(et, map[string]any{
		"title": " Backend Engineer ", "company": "Acme", "experience_years": "3",
		"salary_min": "600000", "salary_max": 900000, "skills": "go, postgres", "city": "Pune",
	})
	if job.Title != "Backend Engineer" || job.ExperienceYears != 3 || job.SalaryMin != 600000 || job.EmployerID != emp.ID {
		t.Fatalf("unexpected job %+v", job)
	}

	for _, body := range []map[string]any{
		{"company": "No title"},
		{"title": "   "},
		{"title": "Inverted", "salary_min": 10, "salary_max": 5},
	} {
		expectStatus(t, env.do(http.MethodPost, "/api/employer/jobs", et, body), http.StatusBadRequest)
	}
	expectStatus(t, env.do(http.MethodPost, "/api/employer/jobs", ct, map[string]any{"title": "x"}), http.StatusForbidden)

	w := env.do(http.MethodGet, "/api/employer/jobs", et, nil)
	expectStatus(t, w, http.StatusOK)
	if list := decode[models.JobsResponse](t, w); list.TotalResults != 1 || list.Results[0].ID != job.ID {
		t.Fatalf("unexpected own jobs %+v", list)
	}

	applyPath := fmt.Sprintf("/api/jobs/%d/apply", job.ID)
	w = env.do(http.MethodPost, applyPath, ct, map[string]string{"message": "Hire me"})
	expectStatus(t, w, http.StatusCreated)
	if resp := decode[models.MessageResponse](t, w); resp.ID == 0 {
		t.Fatalf("expected application id, got %+v", resp)
	}
	if got := env.notifier.types(); len(got) != 1 || got[0] != notify.EventApplicationCreated {
		t.Fatalf("expected application event, got %v", got)
	}

	expectStatus(t, env.do(http.MethodPost, applyPath, ct, nil), http.StatusConflict)
	expectStatus(t, env.do(http.MethodPost, applyPath, et, nil), http.StatusForbidden)
	expectStatus(t, env.do(http.MethodPost, "/api/jobs/9999/apply", ct, nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodPost, "/api/jobs/abc/apply", ct, nil), http.StatusBadRequest)

	w = env.do(http.MethodGet, "/api/employer/applicants", et, nil)
	expectStatus(t, w, http.StatusOK)
	applicants := decode[models.ApplicantsResponse](t, w)
	if len(applicants.Results) != 1 {
		t.Fatalf("expected one applicant, got %+v", applicants)
	}
	if a := applicants.Results[0]; a.CandidateEmail != cand.Email || a.JobTitle != job.Title || a.Message != "Hire me" || a.HasResume {
		t.Fatalf("unexpected applicant %+v", a)
	}

	w = env.do(http.MethodGet, "/api/candidate/applications", ct, nil)
	expectStatus(t, w, http.StatusOK)
	if apps := decode[models.ApplicationsResponse](t, w); len(apps.Results) != 1 || apps.Results[0].JobID != job.ID {
		t.Fatalf("unexpected applications %+v", apps)
	}
}

func TestApplySucceedsWhenNotifierFails(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("n1@example.com", models.RoleEmployer, "secret1")
	cand := env.user("n2@example.com", models.RoleCandidate, "secret1")
	job := env.createJob(env.token(emp), map[string]any{"title": "Ops"})

	env.notifier.err = fmt.Errorf("broker down")
	w := env.do(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), env.token(cand), nil)
	expectStatus(t, w, http.StatusCreated)
}

func TestJobsBrowse(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("browse@example.com", models.RoleEmployer, "secret1")
	et := env.token(emp)

	goJob := env.createJob(et, map[string]any{"title": "Go Developer", "skills": "go", "city": "Bengaluru"})
	env.createJob(et, map[string]any{"title": "Designer", "skills": "figma", "state": "Maharashtra"})

	w := env.do(http.MethodGet, "/api/jobs", "", nil)
	expectStatus(t, w, http.StatusOK)
	if all := decode[models.JobsResponse](t, w); all.TotalResults != 2 || all.Results[0].Title != "Designer" {
		t.Fatalf("expected both jobs newest first, got %+v", all)
	}

	w = env.do(http.MethodGet, "/api/jobs?q=GO&location=bengal", "", nil)
	if found := decode[models.JobsResponse](t, w); found.TotalResults != 1 || found.Results[0].ID != goJob.ID {
		t.Fatalf("unexpected filtered jobs %+v", found)
	}

	w = env.do(http.MethodGet, "/api/jobs?limit=1", "", nil)
	if limited := decode[models.JobsResponse](t, w); limited.TotalResults != 1 {
		t.Fatalf("expected limit to apply, got %+v", limited)
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d", goJob.ID), "", nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Job](t, w); got.Title != "Go Developer" {
		t.Fatalf("unexpected job %+v", got)
	}

	expectStatus(t, env.do(http.MethodGet, "/api/jobs/9999", "", nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodGet, "/api/jobs/0", "", nil), http.StatusBadRequest)
}

func TestEmployerRecommended(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("rec@example.com", models.RoleEmployer, "secret1")
	other := env.user("other@example.com", models.RoleEmployer, "secret1")
	et := env.token(emp)

	expectStatus(t, env.do(http.MethodGet, "/api/employer/recommended", et, nil), http.StatusPaymentRequired)
	env.grantPremium(emp)
	expectStatus(t, env.do(http.MethodGet, "/api/employer/recommended", et, nil), http.StatusNotFound)

	profiles := []struct {
		email string
		body  map[string]any
	}{
		{"weak@example.com", map[string]any{"education": "BA", "experience_years": 12, "skills": "excel"}},
		{"strong@example.com", map[string]any{"education": "bsc", "experience_years": 2, "skills": "Go, Rust"}},
		{"mid@example.com", map[string]any{"education": "MSc", "experience_years": 3, "skills": "go"}},
	}
	ids := map[string]int64{}
	for _, p := range profiles {
		u := env.user(p.email, models.RoleCandidate, "secret1")
		ids[p.email] = u.ID
		expectStatus(t, env.do(http.MethodPut, "/api/candidate/profile", env.token(u), p.body), http.StatusOK)
	}

	first := env.createJob(et, map[string]any{"title": "Old", "skills": "figma"})
	latest := env.createJob(et, map[string]any{"title": "Go role", "education": "BSc", "experience_years": 3, "skills": "go, rust"})
	foreign := env.createJob(env.token(other), map[string]any{"title": "Not yours"})

	w := env.do(http.MethodGet, "/api/employer/recommended", et, nil)
	expectStatus(t, w, http.StatusOK)
	resp := decode[models.RecommendedCandidatesResponse](t, w)
	if resp.Job == nil || resp.Job.ID != latest.ID {
		t.Fatalf("expected the latest job as reference, got %+v", resp.Job)
	}
	want := []struct {
		email string
		score int
	}{
		{"strong@example.com", 3 + 4 + 4},
		{"mid@example.com", 2 + 5},
		{"weak@example.com", 0},
	}
	if len(resp.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(resp.Results))
	}
	for i, w := range want {
		if got := resp.Results[i]; got.UserID != ids[w.email] || got.Score != w.score {
			t.Errorf("result %d: got user %d score %d, want %s score %d", i, got.UserID, got.Score, w.email, w.score)
		}
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/employer/recommended?jobId=%d", first.ID), et, nil)
	expectStatus(t, w, http.StatusOK)
	if resp := decode[models.RecommendedCandidatesResponse](t, w); resp.Job.ID != first.ID {
		t.Fatalf("expected job %d as reference, got %d", first.ID, resp.Job.ID)
	}

	expectStatus(t, env.do(http.MethodGet, fmt.Sprintf("/api/employer/recommended?jobId=%d", foreign.ID), et, nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodGet, "/api/employer/recommended?jobId=abc", et, nil), http.StatusBadRequest)
}

func TestEmployerResumeDatabase(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("db@example.com", models.RoleEmployer, "secret1")
	cand := env.user("k8s@example.com", models.RoleCandidate, "secret1")
	et := env.token(emp)

	content := []byte("Platform engineer. Kubernetes, Terraform.")
	expectStatus(t, env.upload("/api/candidate/resume", env.token(cand), "resume", "cv.doc", content), http.StatusOK)

	expectStatus(t, env.do(http.MethodGet, "/api/employer/resumes?q=kubernetes", et, nil), http.StatusPaymentRequired)
	env.grantPremium(emp)

	w := env.do(http.MethodGet, "/api/employer/resumes?q=kubernetes", et, nil)
	expectStatus(t, w, http.StatusOK)
	found := decode[models.ResumeSearchResponse](t, w)
	if found.TotalResults != 1 || found.Results[0].UserID != cand.ID || found.Results[0].ResumeName != "cv.doc" {
		t.Fatalf("unexpected search result %+v", found)
	}

	w = env.do(http.MethodGet, "/api/employer/resumes?q=cobol", et, nil)
	if none := decode[models.ResumeSearchResponse](t, w); none.TotalResults != 0 {
		t.Fatalf("expected no results, got %+v", none)
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/employer/resumes/%d", cand.ID), et, nil)
	expectStatus(t, w, http.StatusOK)
	if !bytes.Equal(w.Body.Bytes(), content) {
		t.Fatalf("downloaded %q, want %q", w.Body.Bytes(), content)
	}

	expectStatus(t, env.do(http.MethodGet, "/api/employer/resumes/9999", et, nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodGet, "/api/employer/resumes/x", et, nil), http.StatusBadRequest)
}

func TestContactCandidateWithoutMail(t *testing.T) {
	env := newTestEnv(t)
	emp := env.user("hr@example.com", models.RoleEmployer, "secret1")
	cand := env.user("cand@example.com", models.RoleCandidate, "secret1")
	et := env.token(emp)
	path := fmt.Sprintf("/api/employer/candidates/%d/contact", cand.ID)
	msg := models.ContactRequest{Subject: "Interview", Message: "Are you free on Monday?"}

	expectStatus(t, env.do(http.MethodPost, path, et, msg), http.StatusPaymentRequired)
	env.grantPremium(emp)

	w := env.do(http.MethodPost, path, et, msg)
	expectStatus(t, w, http.StatusOK)
	resp := decode[models.ContactResponse](t, w)
	if resp.Success || resp.Reason != models.ContactReasonMailNotConfigured || resp.CandidateEmail != "cand@example.com" {
		t.Fatalf("unexpected fallback %+v", resp)
	}
	if len(env.mailer.sent) != 0 {
		t.Fatalf("expected no mail, got %+v", env.mailer.sent)
	}
}

func TestContactCandidateByMail(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) {
		c.SendGridAPIKey = "SG.test"
		c.MailFrom = "noreply@dreamjobs.example.com"
	})
	emp := env.user("hr@example.com", models.RoleEmployer, "secret1")
	cand := env.user("cand@example.com", models.RoleCandidate, "secret1")
	other := env.user("rival@example.com", models.RoleEmployer, "secret1")
	et := env.token(emp)
	env.grantPremium(emp)
	path := fmt.Sprintf("/api/employer/candidates/%d/contact", cand.ID)

	w := env.do(http.MethodPost, path, et, models.ContactRequest{Subject: "Interview", Message: "Are you free on Monday?"})
	expectStatus(t, w, http.StatusOK)
	if resp := decode[models.ContactResponse](t, w); !resp.Success || resp.CandidateEmail != "" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(env.mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(env.mailer.sent))
	}
	sent := env.mailer.sent[0]
	if sent.To != "cand@example.com" || sent.ReplyTo != "hr@example.com" || sent.Subject != "Interview" {
		t.Fatalf("unexpected envelope %+v", sent)
	}
	if !strings.Contains(sent.Body, "hr@example.com") || !strings.Contains(sent.Body, "Are you free on Monday?") {
		t.Fatalf("unexpected body %q", sent.Body)
	}

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"unknown user", "/api/employer/candidates/9999/contact", models.ContactRequest{Subject: "s", Message: "m"}, http.StatusNotFound},
		{"not a candidate", fmt.Sprintf("/api/employer/candidates/%d/contact", other.ID), models.ContactRequest{Subject: "s", Message: "m"}, http.StatusNotFound},
		{"bad id", "/api/employer/candidates/x/contact", models.ContactRequest{Subject: "s", Message: "m"}, http.StatusBadRequest},
		{"missing subject", path, map[string]string{"message": "m"}, http.StatusBadRequest},
		{"blank message", path, models.ContactRequest{Subject: "s", Message: "   "}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, env.do(http.MethodPost, tt.path, et, tt.body), tt.want)
		})
	}

	expectStatus(t, env.do(http.MethodPost, path, env.token(cand), models.ContactRequest{Subject: "s", Message: "m"}), http.StatusForbidden)

	env.mailer.err = &notify.MailError{Status: http.StatusUnauthorized, Message: "bad key"}
	expectStatus(t, env.do(http.MethodPost, path, et, models.ContactRequest{Subject: "s", Message: "m"}), http.StatusBadGateway)
	if len(env.mailer.sent) != 1 {
		t.Fatalf("expected no further mail, got %d", len(env.mailer.sent))
	}
}
