package tracking

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/event"
)

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func TestIdentityPoseLooksDownNegativeZ(t *testing.T) {
	p := Pose{Transform: mgl64.Ident4()}
	if !vecNear(p.Direction(), mgl64.Vec3{0, 0, -1}) {
		t.Errorf("Direction() = %v, want [0 0 -1]", p.Direction())
	}
	if !vecNear(p.Position(), mgl64.Vec3{}) {
		t.Errorf("Position() = %v, want origin", p.Position())
	}
}

func TestPoseFromYawPitch(t *testing.T) {
	// 向左转 90 度后朝向 -X
	p := PoseFromYawPitch(mgl64.Vec3{1, 2, 3}, math.Pi/2, 0)
	if !vecNear(p.Direction(), mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("Direction() = %v, want [-1 0 0]", p.Direction())
	}
	if !vecNear(p.Position(), mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Position() = %v, want [1 2 3]", p.Position())
	}

	// 抬头时朝向的 Y 分量为正
	up := PoseFromYawPitch(mgl64.Vec3{}, 0, 0.5)
	if up.Direction()[1] <= 0 {
		t.Errorf("pitch up should give positive Y direction, got %v", up.Direction())
	}
}

func TestLookProviderPitchClamp(t *testing.T) {
	l := NewLookProvider()
	l.Rotate(0, 10)
	_, pitch := l.Angles()
	if pitch > math.Pi/2 {
		t.Errorf("pitch should be clamped, got %v", pitch)
	}

	l.SetReady(false)
	if _, ok := l.CurrentPose(); ok {
		t.Error("CurrentPose should be unavailable when not ready")
	}
}

func TestSessionLifecycle(t *testing.T) {
	q := event.NewQueue()
	s := NewSession(NewLookProvider(), q)

	if _, ok := s.CurrentPose(); ok {
		t.Error("idle session should not provide a pose")
	}

	s.Run()
	if _, ok := s.CurrentPose(); !ok {
		t.Error("running session should provide a pose")
	}

	s.Interrupt("phone call")
	s.Fail(errors.New("insufficient features"))
	for _, e := range q.Drain() {
		s.Apply(e)
	}
	if s.State() != StateInterrupted {
		t.Errorf("State() = %v, want Interrupted", s.State())
	}
	if _, ok := s.CurrentPose(); ok {
		t.Error("interrupted session should not provide a pose")
	}

	s.InterruptionEnded()
	for _, e := range q.Drain() {
		s.Apply(e)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, want Running", s.State())
	}

	s.Pause()
	if s.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", s.State())
	}
}
