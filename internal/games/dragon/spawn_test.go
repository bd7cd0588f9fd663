package dragon

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

func TestNewSpawnerPolicy(t *testing.T) {
	if _, ok := NewSpawner(config.Spawn{Policy: config.SpawnPerFrame}).(FrameSpawner); !ok {
		t.Error("frame policy should build a FrameSpawner")
	}

	sp, ok := NewSpawner(config.Spawn{Policy: config.SpawnPerTick, EveryTicks: 4, Chance: 9}).(TickSpawner)
	if !ok {
		t.Fatal("tick policy should build a TickSpawner")
	}
	if sp.Every != 4 || sp.Chance != 9 {
		t.Errorf("TickSpawner = %+v, expected Every=4 Chance=9", sp)
	}
}

func TestTickSpawnerCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sp := TickSpawner{Every: 3, Chance: 1}

	for tick := 1; tick <= 30; tick++ {
		want := tick%3 == 0
		if got := sp.OnTick(tick, rng); got != want {
			t.Errorf("OnTick(%d) = %v, expected %v", tick, got, want)
		}
	}
	if sp.OnFrame(0, rng) {
		t.Error("TickSpawner should never fire on frames")
	}
}

func TestTickSpawnerOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sp := TickSpawner{Every: 1, Chance: 10}

	fired := 0
	for tick := 1; tick <= 10000; tick++ {
		if sp.OnTick(tick, rng) {
			fired++
		}
	}
	if fired < 800 || fired > 1200 {
		t.Errorf("one-in-ten spawner fired %d times in 10000 ticks", fired)
	}
}

func TestFrameSpawner(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sp := FrameSpawner{}

	for _, acc := range []float64{1, 12.5, 39.9, 49} {
		for i := 0; i < 100; i++ {
			if sp.OnFrame(acc, rng) {
				t.Fatalf("OnFrame(%v) should not fire off the modulus", acc)
			}
		}
	}

	fired := 0
	for i := 0; i < 3900; i++ {
		if sp.OnFrame(0.4, rng) {
			fired++
		}
	}
	// Expected 300 (3 in 39).
	if fired < 200 || fired > 400 {
		t.Errorf("frame spawner fired %d times in 3900 eligible frames", fired)
	}
	if sp.OnTick(1, rng) {
		t.Error("FrameSpawner should never fire on ticks")
	}
}
