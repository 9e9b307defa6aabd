package terrain

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteOBJ(t *testing.T) {
	flat := func(x, y float32) float32 { return 0 }
	mesh, err := BuildMesh(flat, Grid{N: 3, LengthX: 2, LengthY: 2})
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}

	var buf bytes.Buffer
	if err := mesh.WriteOBJ(&buf); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		fields := strings.Fields(line)
		counts[fields[0]]++
	}
	if counts["v"] != 9 {
		t.Errorf("expected 9 positions, got %d", counts["v"])
	}
	if counts["vt"] != 9 || counts["vn"] != 9 {
		t.Errorf("expected 9 uvs and normals, got %d and %d", counts["vt"], counts["vn"])
	}
	if counts["f"] != 8 {
		t.Errorf("expected 8 faces, got %d", counts["f"])
	}
	if !strings.Contains(buf.String(), "f 1/1/1 5/5/5 2/2/2\n") {
		t.Error("expected first face to use 1-based indices")
	}
}
