package game

import (
	"github.com/lixenwraith/trick-runner/config"
	"github.com/lixenwraith/trick-runner/level"
	"github.com/lixenwraith/trick-runner/parameter"
	"github.com/lixenwraith/trick-runner/system"
)

// FileLoader resolves level ids to files under the asset directory
func FileLoader(paths config.Paths) system.MapLoader {
	return func(levelID string) (level.Map, error) {
		f, err := level.LoadFile(paths.LevelFile(levelID, parameter.LevelFileExt))
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}
