package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine 测试正弦波采样范围和长度
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 1000)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Fatal("Expected ok=true on first read")
	}
	if want := rate.N(10 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
	}

	// 耗尽后返回 ok=false
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape 测试包络起点为零
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start at 0, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain should be full volume, got %f", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] > 0.2 {
		t.Errorf("Release tail should be small, got %f", samples[99][0])
	}
}

// TestRenderF32 测试渲染结果的字节数和数值
func TestRenderF32(t *testing.T) {
	tests := []struct {
		name     string
		streamer beep.Streamer
		duration time.Duration
	}{
		{"launch", LaunchCue(DefaultSampleRate, 1), launchDuration},
		{"landing", LandingCue(DefaultSampleRate, 1), landingDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := RenderF32(tt.streamer)

			frames := beep.SampleRate(DefaultSampleRate).N(tt.duration)
			if len(data) != frames*8 {
				t.Fatalf("Expected %d bytes, got %d", frames*8, len(data))
			}
			for i := 0; i < len(data); i += 4 {
				v := math.Float32frombits(binary.LittleEndian.Uint32(data[i:]))
				if math.IsNaN(float64(v)) || v < -1.01 || v > 1.01 {
					t.Fatalf("Sample at byte %d out of range: %f", i, v)
				}
			}
		})
	}
}

// TestSilentCue 测试音量为 0 时输出静音
func TestSilentCue(t *testing.T) {
	data := RenderF32(LandingCue(DefaultSampleRate, 0))
	for i := 0; i < len(data); i += 4 {
		if math.Float32frombits(binary.LittleEndian.Uint32(data[i:])) != 0 {
			t.Fatal("Expected silence at volume 0")
		}
	}
}
