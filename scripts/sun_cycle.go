package scripts

import (
	"GopherSky/internal/behaviour"
	"GopherSky/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const SunCycleScriptName = "SunCycleScript"

// SunCycleScript turns its GameObject (the sun) about the X axis and keeps
// the sky's day/night switch in step with the sun's elevation.
type SunCycleScript struct {
	behaviour.BaseComponent
	DegreesPerSecond float32
	Sky              *behaviour.SkyController
}

func init() {
	behaviour.RegisterScript(SunCycleScriptName, func() behaviour.Component {
		return &SunCycleScript{DegreesPerSecond: 6}
	})
}

func (s *SunCycleScript) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (s *SunCycleScript) GetTypeName() string {
	return SunCycleScriptName
}

func (s *SunCycleScript) Start() {
	s.syncDayNight()
}

func (s *SunCycleScript) Update() {
	transform := s.GetGameObject().Transform
	transform.Rotate(mgl32.Vec3{1, 0, 0}, mgl32.DegToRad(s.DegreesPerSecond*behaviour.DeltaTime()))
	s.syncDayNight()
}

// SunIsUp reports whether light from the transform travels downward.
func SunIsUp(t *behaviour.Transform) bool {
	return t.Forward().Y() < 0
}

func (s *SunCycleScript) syncDayNight() {
	if s.Sky == nil || s.Sky.Config == nil {
		return
	}
	day := SunIsUp(s.GetGameObject().Transform)
	if day == s.Sky.Config.IsDay {
		return
	}
	s.Sky.Config.SetIsDay(day)
	logger.Log.Debug("Sun crossed the horizon", zap.Bool("day", day))
}
