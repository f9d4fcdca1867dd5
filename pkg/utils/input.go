// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/javelin/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerState 获取指针的完整状态（触摸优先，其次鼠标）
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// InputSampler 每帧把 ebiten 的输入状态采样为 simulation.FrameInput
//
// 只采样电平（当前是否按下），释放边沿由模拟本身比较相邻两帧得出。
type InputSampler struct {
	pauseKey ebiten.Key

	// 触摸抬起后 TouchPosition 不再可用，保留最后一次触摸位置
	lastTouch   simulation.Vec2
	wasTouching bool
}

// NewInputSampler 创建输入采样器
func NewInputSampler(pauseKey ebiten.Key) *InputSampler {
	return &InputSampler{pauseKey: pauseKey}
}

// Sample 采样当前帧输入
func (s *InputSampler) Sample() simulation.FrameInput {
	pressed, x, y := GetPointerState()
	pointer := simulation.NewVec2(float64(x), float64(y))

	touching := len(ebiten.AppendTouchIDs(nil)) > 0
	if touching {
		s.lastTouch = pointer
	} else if s.wasTouching {
		pointer = s.lastTouch
	}
	s.wasTouching = touching

	return simulation.FrameInput{
		Pointer:     pointer,
		PointerDown: pressed,
		PauseDown:   ebiten.IsKeyPressed(s.pauseKey),
	}
}
