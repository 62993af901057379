package swagger

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedRoutes collects "METHOD path" for every @Router comment under dir
func annotatedRoutes(t *testing.T, dir string) []string {
	t.Helper()
	var routes []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			routes = append(routes, strings.ToLower(m[2])+" "+m[1])
		}
		return nil
	})
	require.NoError(t, err)
	return routes
}

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Info  map[string]any                       `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	assert.Equal(t, SwaggerInfo.Title, spec.Info["title"])

	documented := make(map[string]bool)
	for path, methods := range spec.Paths {
		for method := range methods {
			documented[method+" "+path] = true
		}
	}

	annotated := annotatedRoutes(t, filepath.Join("..", "..", "api"))
	require.NotEmpty(t, annotated)
	for _, route := range annotated {
		assert.True(t, documented[route], "%s is annotated but missing from docs.go; run go generate", route)
		delete(documented, route)
	}
	assert.Empty(t, documented, "docs.go documents routes no handler annotates; run go generate")
}
