package game

import (
	"log"

	"github.com/decker502/javelin/internal/audio"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue 提示音类型
type Cue int

const (
	// CueLaunch 发射
	CueLaunch Cue = iota
	// CueLanding 落地
	CueLanding
)

// String 返回提示音名称
func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueLanding:
		return "landing"
	default:
		return "unknown"
	}
}

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存提示音
//   - 从 SettingsManager 读取音效开关和音量
type AudioManager struct {
	context         *ebitenaudio.Context        // 音频上下文，可为 nil（静音模式）
	settingsManager *SettingsManager            // 设置管理器，可为 nil
	players         map[Cue]*ebitenaudio.Player // 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，nil 时所有播放请求直接返回 false
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *ebitenaudio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[Cue]*ebitenaudio.Player),
	}
}

// PlayCue 播放提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayCue(cue Cue) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()

	return true
}

// Preload 预先合成所有提示音，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	if am.context == nil {
		return
	}
	for _, cue := range []Cue{CueLaunch, CueLanding} {
		am.getPlayer(cue)
	}
	log.Printf("[AudioManager] Preloaded %d cues", len(am.players))
}

func (am *AudioManager) getPlayer(cue Cue) *ebitenaudio.Player {
	if player, exists := am.players[cue]; exists {
		return player
	}

	rate := am.context.SampleRate()
	var data []byte
	switch cue {
	case CueLaunch:
		data = audio.RenderF32(audio.LaunchCue(rate, 1))
	case CueLanding:
		data = audio.RenderF32(audio.LandingCue(rate, 1))
	default:
		log.Printf("[AudioManager] Warning: unknown cue %d", cue)
		return nil
	}

	player := am.context.NewPlayerF32FromBytes(data)
	am.players[cue] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
