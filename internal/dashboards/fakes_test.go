package dashboards

import (
	"context"
	"fmt"
)

// fakeOutput captures emitted lines by level.
type fakeOutput struct {
	success []string
	warn    []string
	errs    []string
	info    []string
}

func (o *fakeOutput) Successf(format string, args ...any) {
	o.success = append(o.success, fmt.Sprintf(format, args...))
}

func (o *fakeOutput) Warnf(format string, args ...any) {
	o.warn = append(o.warn, fmt.Sprintf(format, args...))
}

func (o *fakeOutput) Errorf(format string, args ...any) {
	o.errs = append(o.errs, fmt.Sprintf(format, args...))
}

func (o *fakeOutput) Infof(format string, args ...any) {
	o.info = append(o.info, fmt.Sprintf(format, args...))
}

// fakePrompt returns scripted answers and records what was asked.
type fakePrompt struct {
	confirmAnswer bool
	strongAnswer  bool
	confirmCalls  []string
	strongCalls   []string
}

func (p *fakePrompt) Confirm(message string) (bool, error) {
	p.confirmCalls = append(p.confirmCalls, message)
	return p.confirmAnswer, nil
}

func (p *fakePrompt) ConfirmStrong(message, requiredPhrase string) (bool, error) {
	p.strongCalls = append(p.strongCalls, message)
	return p.strongAnswer, nil
}

// fakeProgress counts callbacks.
type fakeProgress struct {
	starts    []string
	results   map[string]error
	completed int
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{results: make(map[string]error)}
}

func (p *fakeProgress) ItemStart(id string, index, total int) {
	p.starts = append(p.starts, id)
}

func (p *fakeProgress) ItemResult(id string, err error) {
	p.results[id] = err
}

func (p *fakeProgress) Complete(result BulkResult) {
	p.completed++
}

// fakeService records delete calls and fails for ids listed in failWith.
type fakeService struct {
	listing  []Summary
	deleted  []string
	failWith map[string]error
}

func (s *fakeService) List(ctx context.Context) ([]Summary, error) {
	return s.listing, nil
}

func (s *fakeService) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	if err, ok := s.failWith[id]; ok {
		return err
	}
	return nil
}

func sampleListing() []Summary {
	return []Summary{
		{ID: "uuid-1", Title: "CPU Usage", CreatedBy: "admin"},
		{ID: "uuid-2", Title: "Host Overview", CreatedBy: "admin"},
		{ID: "uuid-3", Title: "cpu-errors", CreatedBy: "dev"},
	}
}
