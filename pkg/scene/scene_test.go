package scene

import (
	"math"
	"testing"

	"github.com/fresh-milkshake/ray-tracing/pkg/core"
)

const testHorizon = 1000.0

func redMaterial() core.Material {
	return core.NewMaterial(core.NewVec3(0.9, 0.1, 0.1), core.NewVec3(1, 0, 0), 10)
}

func blueMaterial() core.Material {
	return core.NewMaterial(core.NewVec3(0.1, 0.1, 0.9), core.NewVec3(1, 0, 0), 10)
}

func TestScene_Intersect_NearestSphere(t *testing.T) {
	s := NewScene()
	if err := s.AddSphere(core.NewVec3(0, 0, -10), 1, blueMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.AddSphere(core.NewVec3(0, 0, -5), 1, redMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Intersect(ray, testHorizon)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
	if hit.Material.Diffuse != redMaterial().Diffuse {
		t.Errorf("Expected the closer sphere's material, got diffuse %v", hit.Material.Diffuse)
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected outward normal %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestScene_Intersect_EquidistantTieKeepsFirst(t *testing.T) {
	// Both spheres present their near surface exactly at t=4
	s := NewScene()
	if err := s.AddSphere(core.NewVec3(0, 0, -5), 1, redMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.AddSphere(core.NewVec3(0, 0, -7), 3, blueMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Intersect(ray, testHorizon)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	if hit.Material.Diffuse != redMaterial().Diffuse {
		t.Errorf("Expected the first sphere to win the tie, got diffuse %v", hit.Material.Diffuse)
	}
}

func TestScene_Intersect_Miss(t *testing.T) {
	s := NewScene()
	if err := s.AddSphere(core.NewVec3(0, 10, -5), 1, redMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if hit, ok := s.Intersect(ray, testHorizon); ok {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestScene_Intersect_HorizonCutoff(t *testing.T) {
	s := NewScene()
	if err := s.AddSphere(core.NewVec3(0, 0, -2000), 1, redMaterial()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, ok := s.Intersect(ray, testHorizon); ok {
		t.Errorf("Expected far sphere to be cut off at the horizon, got hit at t=%f", hit.T)
	}
	if _, ok := s.Intersect(ray, 5000); !ok {
		t.Error("Expected hit with a raised horizon, but got miss")
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	s := NewScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := s.Intersect(ray, testHorizon); ok {
		t.Error("Expected miss in an empty scene")
	}
}

func TestScene_AddSphere_InvalidRadius(t *testing.T) {
	s := NewScene()
	if err := s.AddSphere(core.NewVec3(0, 0, -5), -1, redMaterial()); err == nil {
		t.Error("Expected error for negative radius, got none")
	}
	if len(s.Spheres) != 0 {
		t.Errorf("Expected no spheres after failed add, got %d", len(s.Spheres))
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if len(s.Spheres) != 4 {
		t.Errorf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}
}
