package services

import (
	"os"
	"sync"

	"shici/pkg/models"
)

var (
	poemCache   []models.Poem
	cachePath   string
	cacheFormat Format
	cacheMutex  sync.Mutex
	cacheLoaded bool
)

// GetPoemsCache returns the reshaped poems stored at path in the given
// format, reading the file only on first use or after InvalidatePoemCache.
func GetPoemsCache(path string, format Format) ([]models.Poem, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if cacheLoaded && cachePath == path && cacheFormat == format {
		return poemCache, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	poems, err := DecodePoems(content, format)
	if err != nil {
		return nil, err
	}

	poemCache = poems
	cachePath = path
	cacheFormat = format
	cacheLoaded = true
	return poemCache, nil
}

func InvalidatePoemCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	poemCache = nil
	cachePath = ""
	cacheFormat = ""
}
