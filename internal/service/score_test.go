package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altiusfest/altius-api/internal/domain"
)

// fakeDepartmentRepo is an in-memory DepartmentRepository. It mimics the
// real one closely enough for aggregation semantics: ReplaceAllPoints
// writes every entry of the map under one lock.
type fakeDepartmentRepo struct {
	mu          sync.Mutex
	departments []domain.Department
	failReplace error
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department domain.Department) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, d := range f.departments {
		if d.Name == department.Name {
			return domain.Department{}, ErrDepartmentNameExists
		}
	}

	department.ID = uint(len(f.departments) + 1)
	f.departments = append(f.departments, department)

	return department, nil
}

func (f *fakeDepartmentRepo) FindAllByName(_ context.Context) ([]domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	results := make([]domain.Department, len(f.departments))
	copy(results, f.departments)
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	return results, nil
}

func (f *fakeDepartmentRepo) UpdatePoint(_ context.Context, id uint, point int) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.departments {
		if f.departments[i].ID == id {
			f.departments[i].Point = point

			return f.departments[i], nil
		}
	}

	return domain.Department{}, ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) ReplaceAllPoints(_ context.Context, points map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failReplace != nil {
		return f.failReplace
	}

	for i := range f.departments {
		if point, ok := points[f.departments[i].Name]; ok {
			f.departments[i].Point = point
		}
	}

	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.departments {
		if f.departments[i].ID == id {
			f.departments = append(f.departments[:i], f.departments[i+1:]...)

			return nil
		}
	}

	return ErrDepartmentNotFound
}

type fakeWinnerLog struct {
	winners []domain.Winner
}

func (f *fakeWinnerLog) FindAll(_ context.Context) ([]domain.Winner, error) {
	return f.winners, nil
}

func TestComputeDepartmentPoints(t *testing.T) {
	departments := []domain.Department{
		{ID: 1, Name: "CSE"},
		{ID: 2, Name: "ECE"},
		{ID: 3, Name: "MECH"},
	}

	t.Run("two-tier rule with case-insensitive first", func(t *testing.T) {
		winners := []domain.Winner{
			{Department: "CSE", Place: "First"},
			{Department: "CSE", Place: "Second"},
			{Department: "CSE", Place: "first"},
		}

		points := ComputeDepartmentPoints(departments, winners)

		assert.Equal(t, 13, points["CSE"])
	})

	t.Run("departments without winners report zero", func(t *testing.T) {
		winners := []domain.Winner{
			{Department: "CSE", Place: "First"},
		}

		points := ComputeDepartmentPoints(departments, winners)

		assert.Equal(t, 5, points["CSE"])
		assert.Equal(t, 0, points["ECE"])
		assert.Equal(t, 0, points["MECH"])
	})

	t.Run("unknown department is skipped silently", func(t *testing.T) {
		winners := []domain.Winner{
			{Department: "CIVIL", Place: "First"},
			{Department: "ECE", Place: "Third"},
		}

		points := ComputeDepartmentPoints(departments, winners)

		assert.NotContains(t, points, "CIVIL")
		assert.Equal(t, 3, points["ECE"])
		assert.Equal(t, 0, points["CSE"])
	})

	t.Run("no winners yields all zeros", func(t *testing.T) {
		points := ComputeDepartmentPoints(departments, nil)

		require.Len(t, points, 3)
		for name, point := range points {
			assert.Zero(t, point, "department %v", name)
		}
	})
}

func TestScoreService_RecomputeDepartmentPoints(t *testing.T) {
	newFixture := func() (*fakeDepartmentRepo, *fakeWinnerLog, *ScoreService) {
		departmentRepo := &fakeDepartmentRepo{
			// Stale points prove recompute derives from scratch; the
			// insertion order is deliberately not alphabetical so the
			// name-ascending contract is actually exercised.
			departments: []domain.Department{
				{ID: 1, Name: "ECE", Point: 42},
				{ID: 2, Name: "CSE", Point: 99},
			},
		}
		winnerRepo := &fakeWinnerLog{
			winners: []domain.Winner{
				{Department: "CSE", Place: "First"},
				{Department: "CSE", Place: "Second"},
				{Department: "CSE", Place: "first"},
				{Department: "GHOST", Place: "First"},
			},
		}

		return departmentRepo, winnerRepo, NewScoreService(departmentRepo, winnerRepo)
	}

	t.Run("recomputes from scratch and returns updated list", func(t *testing.T) {
		_, _, svc := newFixture()

		departments, err := svc.RecomputeDepartmentPoints(context.Background())

		require.NoError(t, err)
		require.Len(t, departments, 2)
		assert.Equal(t, "CSE", departments[0].Name)
		assert.Equal(t, 13, departments[0].Point)
		assert.Equal(t, "ECE", departments[1].Name)
		assert.Equal(t, 0, departments[1].Point, "stale points must be reset, not kept")
	})

	t.Run("is idempotent over an unchanged winner set", func(t *testing.T) {
		_, _, svc := newFixture()

		first, err := svc.RecomputeDepartmentPoints(context.Background())
		require.NoError(t, err)

		second, err := svc.RecomputeDepartmentPoints(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("concurrent recomputes converge to the same totals", func(t *testing.T) {
		// Two racing recomputes interleave read and write phases, but
		// each writes totals derived purely from the same winner set,
		// so whichever write lands last the totals are identical.
		departmentRepo, _, svc := newFixture()

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := svc.RecomputeDepartmentPoints(context.Background())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		departments, err := departmentRepo.FindAllByName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 13, departments[0].Point)
		assert.Equal(t, 0, departments[1].Point)
	})

	t.Run("persistence failure aborts the recompute", func(t *testing.T) {
		departmentRepo, _, svc := newFixture()
		departmentRepo.failReplace = errors.New("connection reset")

		_, err := svc.RecomputeDepartmentPoints(context.Background())

		require.Error(t, err)

		departments, err := departmentRepo.FindAllByName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 99, departments[0].Point, "failed recompute must not half-apply")
	})
}
