// Package audio 合成标枪的提示音效
//
// 音效由振荡器和包络在内存中生成，再渲染为交错的 float32 PCM，
// 交给 ebiten 的音频上下文播放，不依赖任何音频文件。
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate 与 ebiten 音频上下文保持一致
const DefaultSampleRate = 48000

// 音效时长参数
const (
	launchDuration = 180 * time.Millisecond
	launchAttack   = 15 * time.Millisecond
	launchRelease  = 140 * time.Millisecond

	landingDuration = 140 * time.Millisecond
	landingAttack   = 2 * time.Millisecond
	landingRelease  = 120 * time.Millisecond
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator 生成原始波形
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator 创建固定时长的振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope 为音源套上起音/释音包络
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量；0 表示静音（log2(0) 为 -Inf）
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// LaunchCue 发射时的呼啸声：噪声加上一个低频正弦
func LaunchCue(sampleRate int, volume float64) beep.Streamer {
	rate := beep.SampleRate(sampleRate)

	noise := NewEnvelope(NewOscillator(0, launchDuration, WaveNoise, rate),
		launchDuration, launchAttack, launchRelease, rate)
	tone := NewEnvelope(NewOscillator(220, launchDuration, WaveSine, rate),
		launchDuration, launchAttack, launchRelease, rate)

	mixed := beep.Mix(
		withVolume(noise, 0.6),
		withVolume(tone, 0.4),
	)
	return withVolume(beep.Take(rate.N(launchDuration), mixed), volume)
}

// LandingCue 落地时的闷响：低频正弦
func LandingCue(sampleRate int, volume float64) beep.Streamer {
	rate := beep.SampleRate(sampleRate)

	thud := NewEnvelope(NewOscillator(90, landingDuration, WaveSine, rate),
		landingDuration, landingAttack, landingRelease, rate)
	return withVolume(thud, volume)
}

// RenderF32 把音源完整渲染为交错的小端 float32 PCM（立体声）
func RenderF32(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, len(buf)*8)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(buf[i][0])))
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(float32(buf[i][1])))
		}
		if !ok {
			return out
		}
	}
}
