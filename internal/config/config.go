package config

import "sync"

// TerrainSettings holds terrain synthesis and export configuration
type TerrainSettings struct {
	mu         sync.RWMutex
	segmentsX  int
	segmentsY  int
	extentW    float64
	extentH    float64
	viewportW  int
	viewportH  int
	amplitude  float64
	backend    string
	strictCull bool
}

var globalTerrainSettings = &TerrainSettings{
	segmentsX:  120,
	segmentsY:  120,
	extentW:    20,
	extentH:    20,
	viewportW:  800,
	viewportH:  600,
	amplitude:  3.0,
	backend:    "simplex",
	strictCull: false,
}

// GetSegments returns the grid resolution (segments per axis)
func GetSegments() (int, int) {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.segmentsX, globalTerrainSettings.segmentsY
}

// SetSegments sets the grid resolution, clamped to [1, 1024]
func SetSegments(x, y int) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()

	if x < 1 {
		x = 1
	}
	if x > 1024 {
		x = 1024
	}
	if y < 1 {
		y = 1
	}
	if y > 1024 {
		y = 1024
	}

	globalTerrainSettings.segmentsX = x
	globalTerrainSettings.segmentsY = y
}

// GetExtent returns the terrain plane extent in world units
func GetExtent() (float64, float64) {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.extentW, globalTerrainSettings.extentH
}

// SetExtent sets the terrain plane extent in world units
func SetExtent(w, h float64) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()

	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	globalTerrainSettings.extentW = w
	globalTerrainSettings.extentH = h
}

// GetViewport returns the export canvas size in device pixels
func GetViewport() (int, int) {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.viewportW, globalTerrainSettings.viewportH
}

// SetViewport sets the export canvas size in device pixels
func SetViewport(w, h int) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()

	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	globalTerrainSettings.viewportW = w
	globalTerrainSettings.viewportH = h
}

// GetAmplitude returns the elevation amplitude applied to the height field
func GetAmplitude() float64 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.amplitude
}

// SetAmplitude sets the elevation amplitude
func SetAmplitude(a float64) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.amplitude = a
}

// GetNoiseBackend returns the configured noise backend name
func GetNoiseBackend() string {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.backend
}

// SetNoiseBackend sets the noise backend name
func SetNoiseBackend(name string) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.backend = name
}

// GetStrictCull returns whether strict visibility culling is enabled
func GetStrictCull() bool {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.strictCull
}

// SetStrictCull enables or disables strict visibility culling
func SetStrictCull(enabled bool) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.strictCull = enabled
}
