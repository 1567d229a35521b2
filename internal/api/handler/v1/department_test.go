package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altiusfest/altius-api/internal/domain"
	"github.com/altiusfest/altius-api/internal/service"
)

type fakeDepartmentBackend struct {
	departments []domain.Department
	winners     []domain.Winner
	nextID      uint
	recomputes  int
}

func (f *fakeDepartmentBackend) CreateDepartments(_ context.Context, departments []domain.Department) error {
	for _, department := range departments {
		for _, existing := range f.departments {
			if existing.Name == department.Name {
				return fmt.Errorf("%w: %q", service.ErrDepartmentNameExists, department.Name)
			}
		}

		f.nextID++
		department.ID = f.nextID
		f.departments = append(f.departments, department)
	}

	return nil
}

func (f *fakeDepartmentBackend) UpdateDepartmentPoint(_ context.Context, id uint, point int) (domain.Department, error) {
	for i := range f.departments {
		if f.departments[i].ID == id {
			f.departments[i].Point = point

			return f.departments[i], nil
		}
	}

	return domain.Department{}, service.ErrDepartmentNotFound
}

func (f *fakeDepartmentBackend) DeleteDepartment(_ context.Context, id uint) error {
	for i := range f.departments {
		if f.departments[i].ID == id {
			f.departments = append(f.departments[:i], f.departments[i+1:]...)

			return nil
		}
	}

	return service.ErrDepartmentNotFound
}

// RecomputeDepartmentPoints applies the same two-tier rule as the real
// aggregator so the handler test observes recomputed output.
func (f *fakeDepartmentBackend) RecomputeDepartmentPoints(_ context.Context) ([]domain.Department, error) {
	f.recomputes++

	points := service.ComputeDepartmentPoints(f.departments, f.winners)
	for i := range f.departments {
		f.departments[i].Point = points[f.departments[i].Name]
	}

	results := make([]domain.Department, len(f.departments))
	copy(results, f.departments)
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	return results, nil
}

func newDepartmentTestRouter(backend *fakeDepartmentBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewDepartmentHandler(backend, backend)

	router := gin.New()
	router.POST("/api/v1/department", handler.HandleCreateDepartments)
	router.GET("/api/v1/department", handler.HandleListDepartments)
	router.PUT("/api/v1/department/:id", handler.HandleUpdateDepartment)
	router.DELETE("/api/v1/department/:id", handler.HandleDeleteDepartment)

	return router
}

func TestDepartmentHandler_HandleCreateDepartments(t *testing.T) {
	t.Run("bulk insert", func(t *testing.T) {
		backend := &fakeDepartmentBackend{}
		router := newDepartmentTestRouter(backend)

		recorder := postJSON(t, router, "/api/v1/department", []gin.H{
			{"name": "CSE", "imgpath": "/img/cse.png"},
			{"name": "ECE", "imgpath": "/img/ece.png"},
		})

		assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		assert.Len(t, backend.departments, 2)
	})

	t.Run("rejects an empty array", func(t *testing.T) {
		router := newDepartmentTestRouter(&fakeDepartmentBackend{})

		recorder := postJSON(t, router, "/api/v1/department", []gin.H{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects an entry without an image path", func(t *testing.T) {
		router := newDepartmentTestRouter(&fakeDepartmentBackend{})

		recorder := postJSON(t, router, "/api/v1/department", []gin.H{{"name": "CSE"}})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		backend := &fakeDepartmentBackend{
			departments: []domain.Department{{ID: 1, Name: "CSE"}},
		}
		router := newDepartmentTestRouter(backend)

		recorder := postJSON(t, router, "/api/v1/department", []gin.H{
			{"name": "CSE", "imgpath": "/img/cse.png"},
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "CSE", "the response must name the colliding department")
	})
}

func TestDepartmentHandler_HandleListDepartments(t *testing.T) {
	backend := &fakeDepartmentBackend{
		departments: []domain.Department{
			{ID: 1, Name: "CSE", Point: 99},
			{ID: 2, Name: "ECE", Point: 42},
		},
		winners: []domain.Winner{
			{Department: "CSE", Place: "First"},
			{Department: "CSE", Place: "third"},
		},
	}
	router := newDepartmentTestRouter(backend)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/department")
	require.Equal(t, http.StatusOK, recorder.Code)

	var departments []domain.Department
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &departments))
	require.Len(t, departments, 2)
	assert.Equal(t, 8, departments[0].Point, "stale CSE points replaced by recompute")
	assert.Equal(t, 0, departments[1].Point, "ECE has no winners")
	assert.Equal(t, 1, backend.recomputes, "listing recomputes exactly once")
}
