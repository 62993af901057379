package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/killallgit/podcast-search/api/types"
	"github.com/killallgit/podcast-search/internal/database"
	"github.com/killallgit/podcast-search/internal/services/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		setupDeps        func(t *testing.T) *types.Dependencies
		expectedStatus   int
		expectedOverall  string
		expectedDatabase string
		expectedCatalog  string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { db.Close() })
				return &types.Dependencies{
					DB:         db,
					Catalog:    catalog.NewService(nil),
					CatalogURL: "https://catalog.example.com/podcasts",
				}
			},
			expectedStatus:   http.StatusOK,
			expectedOverall:  "ok",
			expectedDatabase: "healthy",
			expectedCatalog:  "configured",
		},
		{
			name: "without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus:   http.StatusOK,
			expectedOverall:  "ok",
			expectedDatabase: "not configured",
			expectedCatalog:  "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus:   http.StatusServiceUnavailable,
			expectedOverall:  "unhealthy",
			expectedDatabase: "unhealthy",
			expectedCatalog:  "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp struct {
				Status   string                       `json:"status"`
				Services map[string]map[string]string `json:"services"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedOverall, resp.Status)
			assert.Equal(t, tt.expectedDatabase, resp.Services["database"]["status"])
			assert.Equal(t, tt.expectedCatalog, resp.Services["catalog"]["status"])
		})
	}
}
