package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the handle of one running orchestrator job.
type Job struct {
	AssemblyID string
	RunID      string
	StartedAt  time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Done is closed once the job's goroutine has returned.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) finish() {
	j.once.Do(func() {
		j.cancel()
		close(j.done)
	})
}

// JobRegistry maps assembly ids to their running jobs so a job can be
// cancelled from outside. It is in-memory only.
type JobRegistry struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func NewJobRegistry() *JobRegistry {
	return &JobRegistry{jobs: make(map[string]*Job)}
}

// Register creates the handle for a new job and derives its context from
// parent. An assembly can have at most one job.
func (r *JobRegistry) Register(parent context.Context, assemblyID string) (*Job, context.Context, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[assemblyID]; exists {
		return nil, nil, fmt.Errorf("job for %s already registered", assemblyID)
	}

	ctx, cancel := context.WithCancel(parent)
	job := &Job{
		AssemblyID: assemblyID,
		RunID:      uuid.NewString(),
		StartedAt:  time.Now(),
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	r.jobs[assemblyID] = job
	return job, ctx, nil
}

// Complete removes job from the registry and marks it done.
func (r *JobRegistry) Complete(job *Job) {
	r.mu.Lock()
	if cur, ok := r.jobs[job.AssemblyID]; ok && cur == job {
		delete(r.jobs, job.AssemblyID)
	}
	r.mu.Unlock()
	job.finish()
}

// Cancel cancels the job of assemblyID, if any, and stops tracking it.
// The returned job's Done channel reports when it has actually stopped.
func (r *JobRegistry) Cancel(assemblyID string) (*Job, bool) {
	r.mu.Lock()
	job, ok := r.jobs[assemblyID]
	if ok {
		delete(r.jobs, assemblyID)
	}
	r.mu.Unlock()

	if ok {
		job.cancel()
	}
	return job, ok
}

func (r *JobRegistry) Get(assemblyID string) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[assemblyID]
	return job, ok
}

// Running lists the assembly ids with a tracked job, sorted.
func (r *JobRegistry) Running() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *JobRegistry) CancelAll() {
	r.mu.Lock()
	jobs := make([]*Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}
	r.mu.Unlock()

	for _, job := range jobs {
		job.cancel()
	}
}
