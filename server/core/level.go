package core

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/doomerang-collide/shared/leveldata"
)

// LoadServerLevel loads every .tmx level under assetsDir/levels and returns
// the one called name, or the first by name when name is empty.
func LoadServerLevel(assetsDir, name string) (string, *leveldata.CollisionData, error) {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return "", nil, fmt.Errorf("load all levels: %w", err)
	}

	if name == "" {
		name = names[0]
	}
	data, ok := levels[name]
	if !ok {
		return "", nil, fmt.Errorf("level %q not found (have %v)", name, names)
	}

	log.Printf("Loaded level %q: %d solid runs, %d obstacles, %d spawn points, %dx%d map",
		name, len(data.SolidRects), len(data.Obstacles), len(data.SpawnPoints), data.MapWidth, data.MapHeight)

	return name, data, nil
}
