package file

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

func testJob(title string) *domain.Job {
	return &domain.Job{
		JobID:        uuid.NewString(),
		Title:        title,
		Seniority:    "senior",
		Location:     "Lisbon",
		WorkMode:     "remote",
		ContractType: "permanent",
		MustHave:     []string{"Go"},
		SalaryMin:    50000,
		SalaryMax:    70000,
		Currency:     "EUR",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestJobStore_MissingFileIsEmpty(t *testing.T) {
	store := NewJobStore(t.TempDir())

	jobs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobStore_AppendAndReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	job := testJob("Backend Engineer")
	store := NewJobStore(dir)
	require.NoError(t, store.Append(ctx, job))

	reopened := NewJobStore(dir)
	jobs, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, *job, jobs[0])
}

func TestJobStore_IndependentFromResumes(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	jobs := NewJobStore(dir)
	resumes := NewResumeStore(dir)

	require.NoError(t, jobs.Append(ctx, testJob("Backend Engineer")))
	require.NoError(t, resumes.Append(ctx, testResume("Ada Lovelace")))

	assert.NotEqual(t, filepath.Join(dir, resumesFile), filepath.Join(dir, jobsFile))

	listed, err := jobs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestJobStore_ConcurrentAppendsLoseNothing(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store := NewJobStore(dir)

	const n = 25
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, testJob("Backend Engineer")))
		}()
	}
	wg.Wait()

	jobs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, n)

	// Every persisted job keeps its own unique id.
	seen := make(map[string]bool, n)
	for i := range jobs {
		assert.False(t, seen[jobs[i].JobID])
		seen[jobs[i].JobID] = true
	}
}
