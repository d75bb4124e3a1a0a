package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-skills/internal/analytics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type fakeAnalyticsService struct {
	DashboardStatsFn func(ctx context.Context) (analytics.DashboardStats, error)
	SkillsMatrixFn   func(ctx context.Context) ([]analytics.MatrixRow, error)
	SkillGapsFn      func(ctx context.Context) ([]analytics.SkillGap, error)
}

func (f *fakeAnalyticsService) DashboardStats(ctx context.Context) (analytics.DashboardStats, error) {
	return f.DashboardStatsFn(ctx)
}
func (f *fakeAnalyticsService) SkillsMatrix(ctx context.Context) ([]analytics.MatrixRow, error) {
	return f.SkillsMatrixFn(ctx)
}
func (f *fakeAnalyticsService) SkillGaps(ctx context.Context) ([]analytics.SkillGap, error) {
	return f.SkillGapsFn(ctx)
}

func TestAnalyticsHandler_GetDashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAnalyticsService{
			DashboardStatsFn: func(ctx context.Context) (analytics.DashboardStats, error) {
				return analytics.DashboardStats{TotalEmployees: 7, TotalSkills: 20, TotalPositions: 3}, nil
			},
		}

		h := analytics.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

		h.GetDashboardStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)

		var stats analytics.DashboardStats
		assert.NoError(t, json.Unmarshal(env.Data, &stats))
		assert.Equal(t, int64(7), stats.TotalEmployees)
	})

	t.Run("failure maps to 500", func(t *testing.T) {
		svc := &fakeAnalyticsService{
			DashboardStatsFn: func(ctx context.Context) (analytics.DashboardStats, error) {
				return analytics.DashboardStats{}, errors.New("db down")
			},
		}

		h := analytics.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)

		h.GetDashboardStats(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAnalyticsHandler_GetSkillGaps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty result is an empty array", func(t *testing.T) {
		svc := &fakeAnalyticsService{
			SkillGapsFn: func(ctx context.Context) ([]analytics.SkillGap, error) {
				return nil, nil
			},
		}

		h := analytics.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/skill-gaps", nil)

		h.GetSkillGaps(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "[]", string(env.Data))
	})
}

func TestAnalyticsHandler_GetSkillsMatrix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rows serialize nullable fields as null", func(t *testing.T) {
		svc := &fakeAnalyticsService{
			SkillsMatrixFn: func(ctx context.Context) ([]analytics.MatrixRow, error) {
				return []analytics.MatrixRow{{EmployeeID: "e1", EmployeeName: "Ada Lovelace"}}, nil
			},
		}

		h := analytics.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/skills-matrix", nil)

		h.GetSkillsMatrix(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

		var rows []map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 1)
		assert.Nil(t, rows[0]["skill_name"])
		assert.Equal(t, "Ada Lovelace", rows[0]["employee_name"])
	})
}
