package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func assetPaths(dir string) AssetPaths {
	return AssetPaths{
		Vertex:   filepath.Join(dir, "vertex.glsl"),
		Fragment: filepath.Join(dir, "fragment.glsl"),
		Model:    filepath.Join(dir, "model.obj"),
	}
}

func TestLoadAssets(t *testing.T) {
	dir := writeAssets(t, map[string]string{
		"vertex.glsl":   "vertex",
		"fragment.glsl": "fragment",
		"model.obj":     quadOBJ,
	})

	a, err := LoadAssets(context.Background(), assetPaths(dir))
	if err != nil {
		t.Fatal(err)
	}

	if a.ShaderErr != nil || a.ModelErr != nil {
		t.Fatalf("LoadAssets() unexpected errors: %v, %v", a.ShaderErr, a.ModelErr)
	}
	if a.VertexSource != "vertex\x00" || a.FragmentSource != "fragment\x00" {
		t.Errorf("LoadAssets() sources %q, %q", a.VertexSource, a.FragmentSource)
	}
	if r := a.Model.TriangleCount(); r != 2 {
		t.Errorf("LoadAssets() model triangles != 2 (got %v)", r)
	}
}

func TestLoadAssets_Missing(t *testing.T) {
	tests := []struct {
		Name                string
		Files               map[string]string
		ShaderErr, ModelErr bool
	}{
		{"no model", map[string]string{
			"vertex.glsl":   "v",
			"fragment.glsl": "f",
		}, false, true},
		{"broken model", map[string]string{
			"vertex.glsl":   "v",
			"fragment.glsl": "f",
			"model.obj":     "o empty\nv 0 0 0\n",
		}, false, true},
		{"no fragment shader", map[string]string{
			"vertex.glsl": "v",
			"model.obj":   quadOBJ,
		}, true, false},
		{"nothing", map[string]string{}, true, true},
	}

	for _, c := range tests {
		a, err := LoadAssets(context.Background(), assetPaths(writeAssets(t, c.Files)))
		if err != nil {
			t.Errorf("%s: LoadAssets() error: %v", c.Name, err)
			continue
		}

		if (a.ShaderErr != nil) != c.ShaderErr {
			t.Errorf("%s: ShaderErr != %v (got %v)", c.Name, c.ShaderErr, a.ShaderErr)
		}
		if (a.ModelErr != nil) != c.ModelErr {
			t.Errorf("%s: ModelErr != %v (got %v)", c.Name, c.ModelErr, a.ModelErr)
		}

		// rendering continues with an empty mesh
		if a.Model == nil {
			t.Errorf("%s: Model is nil", c.Name)
		} else if c.ModelErr && !a.Model.Empty() {
			t.Errorf("%s: failed model is not empty", c.Name)
		}
	}
}

func TestLoadAssets_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := LoadAssets(ctx, assetPaths(t.TempDir())); err == nil {
		t.Errorf("LoadAssets() with canceled context expected error")
	}
}
