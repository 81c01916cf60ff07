package editor

import (
	"GopherSky/internal/behaviour"
	"GopherSky/internal/logger"
	"GopherSky/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

const noLightLabel = "None"

// SkyInspector draws the editing panel of a SkyController.
type SkyInspector struct {
	State *EditorState

	// paths holds texture path text while its input field is being edited
	paths map[string]string
}

func NewSkyInspector(state *EditorState) *SkyInspector {
	if state == nil {
		state = NewEditorState()
	}
	return &SkyInspector{
		State: state,
		paths: make(map[string]string),
	}
}

// Draw renders the panel body into the current imgui window and reports
// whether any value was edited. Edits go through the clamping setters and
// mark the controller dirty so edit mode refreshes on the next frame.
func (in *SkyInspector) Draw(ctrl *behaviour.SkyController, lights []*behaviour.GameObject) bool {
	if ctrl == nil || ctrl.Config == nil {
		imgui.Text("No sky controller selected")
		return false
	}

	id := "sky"
	if obj := ctrl.GetGameObject(); obj != nil {
		id = obj.ID.String()
	}
	imgui.PushID(id)
	defer imgui.PopID()

	changed := in.drawPresets(ctrl)

	for _, group := range Groups {
		flags := imgui.TreeNodeFlagsNone
		if in.State.Open(group) {
			flags = imgui.TreeNodeFlagsDefaultOpen
		}
		open := imgui.CollapsingHeaderV(group, flags)
		in.State.SetOpen(group, open)
		if !open {
			continue
		}

		imgui.Indent()
		for _, f := range FieldsInGroup(group) {
			if in.drawField(ctrl, f, lights) {
				changed = true
			}
		}
		imgui.Unindent()
	}

	imgui.Separator()
	for _, f := range FieldsInGroup(GroupNone) {
		if in.drawField(ctrl, f, lights) {
			changed = true
		}
	}

	if changed {
		ctrl.MarkDirty()
	}
	return changed
}

// ApplyPreset replaces the controller's configuration with a built-in or
// file preset.
func (in *SkyInspector) ApplyPreset(ctrl *behaviour.SkyController, name string) error {
	cfg, err := sky.LoadPreset(name)
	if err != nil {
		return err
	}
	*ctrl.Config = *cfg
	ctrl.MarkDirty()
	in.State.LastPreset = name
	in.paths = make(map[string]string)
	logger.Log.Info("Sky preset applied", zap.String("preset", name))
	return nil
}

// SelectMainLight points the controller at light, or clears it for nil.
func (in *SkyInspector) SelectMainLight(ctrl *behaviour.SkyController, light *behaviour.GameObject) bool {
	if ctrl.MainLight == light {
		return false
	}
	ctrl.MainLight = light
	ctrl.MarkDirty()
	return true
}

// LightLabel names a main light option.
func LightLabel(obj *behaviour.GameObject) string {
	if obj == nil {
		return noLightLabel
	}
	if obj.Name == "" {
		return obj.ID.String()
	}
	return obj.Name
}

func (in *SkyInspector) drawPresets(ctrl *behaviour.SkyController) bool {
	changed := false
	imgui.Text("Presets:")
	for _, name := range sky.PresetNames() {
		imgui.SameLine()
		if imgui.Button(name) {
			if err := in.ApplyPreset(ctrl, name); err != nil {
				logger.Log.Error("Failed to apply sky preset", zap.String("preset", name), zap.Error(err))
				continue
			}
			changed = true
		}
	}
	imgui.Separator()
	return changed
}

func (in *SkyInspector) drawField(ctrl *behaviour.SkyController, f Field, lights []*behaviour.GameObject) bool {
	cfg := ctrl.Config
	label := f.Label + "##" + f.Key
	changed := false

	switch f.Kind {
	case FieldFloat:
		v, _ := FloatValue(cfg, f.Key)
		if imgui.SliderFloatV(label, &v, f.Range.Min, f.Range.Max, "%.2f", 0) {
			changed = SetFloatValue(cfg, f.Key, v)
		}
		tooltip(f.Tooltip)

	case FieldColor:
		c, _ := ColorValue(cfg, f.Key)
		col := c.Array()
		if imgui.ColorEdit3V(label, &col, 0) {
			changed = SetColorValue(cfg, f.Key, sky.ColorFromArray(col))
		}
		tooltip(f.Tooltip)

	case FieldVec3:
		rot := [3]float32(cfg.StarFieldRotation)
		if imgui.DragFloat3(label, &rot) {
			cfg.SetStarFieldRotation(mgl32.Vec3(rot))
			changed = true
		}
		tooltip(f.Tooltip)

	case FieldVec2:
		changed = drawCloudSpeed(cfg, f)

	case FieldTexture:
		changed = in.drawTexturePath(cfg, f, label)

	case FieldDayNight:
		idx := DayNightIndex(cfg.IsDay)
		if imgui.BeginCombo(label, DayNightOptions[idx]) {
			for i, opt := range DayNightOptions {
				if imgui.SelectableV(opt, i == idx, 0, imgui.Vec2{}) && i != idx {
					cfg.SetIsDay(i == 0)
					changed = true
				}
			}
			imgui.EndCombo()
		}
		tooltip(f.Tooltip)

	case FieldMainLight:
		if imgui.BeginCombo(label, LightLabel(ctrl.MainLight)) {
			if imgui.SelectableV(noLightLabel, ctrl.MainLight == nil, 0, imgui.Vec2{}) {
				changed = in.SelectMainLight(ctrl, nil)
			}
			for _, light := range lights {
				imgui.PushID(light.ID.String())
				if imgui.SelectableV(LightLabel(light), ctrl.MainLight == light, 0, imgui.Vec2{}) {
					changed = in.SelectMainLight(ctrl, light)
				}
				imgui.PopID()
			}
			imgui.EndCombo()
		}
		tooltip(f.Tooltip)
	}

	return changed
}

func drawCloudSpeed(cfg *sky.SkyConfiguration, f Field) bool {
	speed := cfg.CloudSpeed
	changed := false

	imgui.Text(f.Label)
	tooltip(f.Tooltip)
	imgui.PushItemWidth(80)
	if imgui.DragFloatV("##cloudSpeedX", &speed[0], 0.01, 0, 0, "X: %.2f", 0) {
		changed = true
	}
	imgui.SameLine()
	if imgui.DragFloatV("##cloudSpeedY", &speed[1], 0.01, 0, 0, "Y: %.2f", 0) {
		changed = true
	}
	imgui.PopItemWidth()

	if changed {
		cfg.SetCloudSpeed(speed)
	}
	return changed
}

// drawTexturePath commits the typed path on Enter. The buffer is kept only
// while the field is active so preset loads show through.
func (in *SkyInspector) drawTexturePath(cfg *sky.SkyConfiguration, f Field, label string) bool {
	current, _ := TexturePath(cfg, f.Key)
	buf, editing := in.paths[f.Key]
	if !editing {
		buf = current
	}

	committed := imgui.InputTextV(label, &buf, imgui.InputTextFlagsEnterReturnsTrue, nil)
	active := imgui.IsItemActive()
	tooltip(f.Tooltip)

	if committed {
		delete(in.paths, f.Key)
		if buf == current {
			return false
		}
		return SetTexturePath(cfg, f.Key, buf)
	}
	if active {
		in.paths[f.Key] = buf
	} else {
		delete(in.paths, f.Key)
	}
	return false
}

func tooltip(text string) {
	if text != "" && imgui.IsItemHovered() {
		imgui.BeginTooltip()
		imgui.Text(text)
		imgui.EndTooltip()
	}
}
