package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	CollisionLayer = "collision"
	ObstacleGroup  = "Obstacles"
	SpawnGroup     = "Spawn"
)

// LoadCollisionData parses a TMX file and returns its solid rects, obstacles and
// spawn points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(data.MapHeight)

	// Solid tiles, merged into one rect per horizontal run
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				switch {
				case solid && runStart < 0:
					runStart = x
				case !solid && runStart >= 0:
					data.SolidRects = append(data.SolidRects, toBoxSpace(
						float64(runStart)*tileW, float64(y)*tileH,
						float64(x-runStart)*tileW, tileH, mapH,
					))
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ObstacleGroup:
			for _, o := range og.Objects {
				obstacle, err := parseObstacle(o, mapH)
				if err != nil {
					return nil, fmt.Errorf("obstacle %d in %s: %w", o.ID, tmxPath, err)
				}
				data.Obstacles = append(data.Obstacles, obstacle)
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				spawn, err := parseSpawn(o, mapH)
				if err != nil {
					return nil, fmt.Errorf("spawn %d in %s: %w", o.ID, tmxPath, err)
				}
				data.SpawnPoints = append(data.SpawnPoints, spawn)
			}
		}
	}

	sortSpawns(data.SpawnPoints)

	return data, nil
}

// sortSpawns orders spawns by spawnIndex, then left to right.
func sortSpawns(spawns []SpawnPoint) {
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].Index != spawns[j].Index {
			return spawns[i].Index < spawns[j].Index
		}
		return spawns[i].X < spawns[j].X
	})
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

func toBoxSpace(x, y, w, h, mapH float64) Rect {
	return Rect{
		X: x + w/2,
		Y: mapH - (y + h/2),
		W: w,
		H: h,
	}
}

func parseObstacle(o *tiled.Object, mapH float64) (Obstacle, error) {
	obstacle := Obstacle{
		Rect: toBoxSpace(o.X, o.Y, o.Width, o.Height, mapH),
		Kind: o.Properties.GetString("kind"),
	}
	switch obstacle.Kind {
	case "":
		obstacle.Kind = KindSolid
	case KindSolid, KindPlatform:
	default:
		return Obstacle{}, fmt.Errorf("unknown kind %q", obstacle.Kind)
	}

	var err error
	if obstacle.MoveX, err = floatProperty(o.Properties, "moveX"); err != nil {
		return Obstacle{}, err
	}
	if obstacle.MoveY, err = floatProperty(o.Properties, "moveY"); err != nil {
		return Obstacle{}, err
	}
	// Tiled's moveY is authored downwards like every other TMX coordinate.
	obstacle.MoveY = -obstacle.MoveY
	if obstacle.Seconds, err = floatProperty(o.Properties, "seconds"); err != nil {
		return Obstacle{}, err
	}
	return obstacle, nil
}

func parseSpawn(o *tiled.Object, mapH float64) (SpawnPoint, error) {
	spawn := SpawnPoint{
		X:     o.X,
		Y:     mapH - o.Y,
		Index: o.Properties.GetInt("spawnIndex"),
	}

	var err error
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"width", &spawn.Width},
		{"height", &spawn.Height},
		{"speedX", &spawn.SpeedX},
		{"speedY", &spawn.SpeedY},
	} {
		if *f.dst, err = floatProperty(o.Properties, f.name); err != nil {
			return SpawnPoint{}, err
		}
	}
	// Speeds are authored in map space as well.
	spawn.SpeedY = -spawn.SpeedY
	return spawn, nil
}

// floatProperty reads an optional numeric property; missing means zero.
func floatProperty(props tiled.Properties, name string) (float64, error) {
	raw := props.GetString(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}
