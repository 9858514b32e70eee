package renderer

import (
	"bytes"
	"testing"

	"github.com/fresh-milkshake/ray-tracing/pkg/scene"
)

func TestRenderParallel_MatchesSequential(t *testing.T) {
	config := DefaultConfig()
	config.Width = 64
	config.Height = 48
	config.NumWorkers = 4

	rt := newTestRaytracer(t, scene.NewDefaultScene(), config)

	sequential, seqStats := rt.Render()
	parallel, parStats := rt.RenderParallel()

	if !bytes.Equal(sequential.Pixels(), parallel.Pixels()) {
		t.Error("Expected parallel render to be byte-identical to sequential render")
	}
	if seqStats != parStats {
		t.Errorf("Expected identical stats, got sequential %+v and parallel %+v", seqStats, parStats)
	}
}

func TestRenderParallel_SingleWorker(t *testing.T) {
	config := DefaultConfig()
	config.Width = 16
	config.Height = 16
	config.NumWorkers = 1

	rt := newTestRaytracer(t, scene.NewMirrorTestScene(), config)

	frame, stats := rt.RenderParallel()
	if len(frame.Pixels()) != 16*16*3 {
		t.Errorf("Expected full buffer, got %d bytes", len(frame.Pixels()))
	}
	if stats.Pixels != 16*16 {
		t.Errorf("Expected %d pixels rendered, got %d", 16*16, stats.Pixels)
	}
}

func TestRenderParallel_OddRowCount(t *testing.T) {
	// Height not divisible by the band size: the last band is short
	config := DefaultConfig()
	config.Width = 8
	config.Height = rowBandSize + 3
	config.NumWorkers = 2

	rt := newTestRaytracer(t, scene.NewDefaultScene(), config)

	_, stats := rt.RenderParallel()
	if stats.Pixels != config.Width*config.Height {
		t.Errorf("Expected %d pixels rendered, got %d", config.Width*config.Height, stats.Pixels)
	}
}

func TestNewWorkerPool_WorkerCount(t *testing.T) {
	rt := newTestRaytracer(t, scene.NewScene(), DefaultConfig())

	pool := NewWorkerPool(rt, 3)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}

	defaulted := NewWorkerPool(rt, 0)
	if defaulted.GetNumWorkers() <= 0 {
		t.Errorf("Expected CPU-count workers, got %d", defaulted.GetNumWorkers())
	}
}

func TestRenderStats_Merge(t *testing.T) {
	a := RenderStats{Pixels: 10, PrimaryRays: 10, ShadowRays: 20, ReflectionRays: 5}
	b := RenderStats{Pixels: 6, PrimaryRays: 6, ShadowRays: 12, ReflectionRays: 3}

	a.Merge(b)
	expected := RenderStats{Pixels: 16, PrimaryRays: 16, ShadowRays: 32, ReflectionRays: 8}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
}
