package terrain

import "testing"

func TestNewNoise(t *testing.T) {
	params := NoiseParams{Octaves: 4, Persistence: 0.2, Lacunarity: 1.5, Seed: 1}
	a, err := NewNoise(params)
	if err != nil {
		t.Fatalf("NewNoise: %v", err)
	}
	b, err := NewNoise(params)
	if err != nil {
		t.Fatalf("NewNoise: %v", err)
	}

	for _, p := range [][2]float32{{0.3, 0.7}, {-1.2, 2.5}, {3.1, -0.4}} {
		if a.At(p[0], p[1]) != b.At(p[0], p[1]) {
			t.Errorf("expected same noise for same seed at %v", p)
		}
	}
}

func TestNewNoiseValidation(t *testing.T) {
	tests := []struct {
		name   string
		params NoiseParams
	}{
		{"no octaves", NoiseParams{Octaves: 0, Persistence: 0.5, Lacunarity: 2}},
		{"zero persistence", NoiseParams{Octaves: 2, Persistence: 0, Lacunarity: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewNoise(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
