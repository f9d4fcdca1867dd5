package scenes

import (
	"github.com/decker502/javelin/pkg/game"
	"github.com/decker502/javelin/pkg/simulation"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// InputSource 每帧提供一次输入快照
//
// 运行时使用 utils.InputSampler，测试中使用脚本化的输入。
type InputSource interface {
	Sample() simulation.FrameInput
}
