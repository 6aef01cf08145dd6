package gallery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
)

type ControlKind int

const (
	ControlSlider ControlKind = iota
	ControlColorPicker
	ControlVectorEditor
	ControlCheckbox
	// ControlReadout shows matrices and arrays without an editor.
	ControlReadout
)

func (k ControlKind) String() string {
	switch k {
	case ControlSlider:
		return "slider"
	case ControlColorPicker:
		return "color"
	case ControlVectorEditor:
		return "vector"
	case ControlCheckbox:
		return "checkbox"
	}
	return "readout"
}

// Control is one parameter widget. Value is the live value from the
// material, falling back to the declared default.
type Control struct {
	Name  string
	Kind  ControlKind
	Type  core.UniformType
	Value any
	Step  float32
}

func controlKind(t core.UniformType) ControlKind {
	switch t {
	case core.UniformFloat, core.UniformInt:
		return ControlSlider
	case core.UniformColor:
		return ControlColorPicker
	case core.UniformVec2, core.UniformVec3, core.UniformVec4:
		return ControlVectorEditor
	case core.UniformBool:
		return ControlCheckbox
	}
	return ControlReadout
}

// BuildControls makes one control per declared uniform, sorted by name.
// Lighting uniforms in the material never get a control.
func BuildControls(view core.UniformView, mat *core.MaterialDescriptor) []Control {
	names := view.Names()
	controls := make([]Control, 0, len(names))
	for _, name := range names {
		u, _ := view.Lookup(name)
		if mat != nil {
			if live, ok := mat.Uniforms[name]; ok {
				u = *live.Clone()
			}
		}
		c := Control{Name: name, Kind: controlKind(u.Type), Type: u.Type, Value: u.Value}
		switch u.Type {
		case core.UniformFloat:
			c.Step = 0.01
		case core.UniformInt:
			c.Step = 1
		}
		controls = append(controls, c)
	}
	return controls
}

// FormatValue renders a control value for text panels.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float32:
		return fmt.Sprintf("%.3f", x)
	case mgl32.Vec2:
		return fmt.Sprintf("(%.3f, %.3f)", x[0], x[1])
	case mgl32.Vec3:
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", x[0], x[1], x[2])
	case mgl32.Vec4:
		return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", x[0], x[1], x[2], x[3])
	case mgl32.Mat4:
		return "mat4"
	case []float32:
		return fmt.Sprintf("[%d floats]", len(x))
	case []mgl32.Vec3:
		return fmt.Sprintf("[%d vec3]", len(x))
	}
	return fmt.Sprint(v)
}

// HexColor formats a 0..1 RGB vector as #rrggbb for color pickers.
func HexColor(c mgl32.Vec3) string {
	b := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", b(c[0]), b(c[1]), b(c[2]))
}

type UiTable struct {
	Headers []string
	Rows    [][]string
}

// String draws the table in ASCII, each column padded to its widest cell.
func (table UiTable) String() string {
	if len(table.Headers) == 0 {
		return ""
	}
	colWidths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		colWidths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(colWidths) && utf8.RuneCountInString(cell) > colWidths[i] {
				colWidths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	var sb strings.Builder
	hline := func() {
		sb.WriteString("+")
		for _, w := range colWidths {
			sb.WriteString(strings.Repeat("-", w+2))
			sb.WriteString("+")
		}
		sb.WriteString("\n")
	}
	renderRow := func(items []string) {
		sb.WriteString("|")
		for i, w := range colWidths {
			item := ""
			if i < len(items) {
				item = items[i]
			}
			sb.WriteString(" ")
			sb.WriteString(item)
			sb.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(item)+1))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	hline()
	renderRow(table.Headers)
	hline()
	for _, row := range table.Rows {
		renderRow(row)
	}
	hline()
	return sb.String()
}

type UiListItem struct {
	Label    string
	Selected bool
}

type UiList struct {
	Title string
	Items []UiListItem
}

func (list UiList) String() string {
	var sb strings.Builder
	sb.WriteString(list.Title)
	sb.WriteString("\n")
	for _, item := range list.Items {
		marker := "  "
		if item.Selected {
			marker = "> "
		}
		sb.WriteString(marker)
		sb.WriteString(item.Label)
		sb.WriteString("\n")
	}
	return sb.String()
}

func menu(title string, names []string, current string) UiList {
	list := UiList{Title: title}
	for _, name := range names {
		list.Items = append(list.Items, UiListItem{Label: name, Selected: name == current})
	}
	return list
}

// ControlPanel is the state of the controls pane, refreshed every frame
// after the animation step.
type ControlPanel struct {
	Shaders    UiList
	Shapes     UiList
	Controls   []Control
	MaterialID string
	// Notices accumulates drained selection notices until the shell clears
	// them with TakeNotices.
	Notices []core.Notice
}

func (p *ControlPanel) Parameters() UiTable {
	table := UiTable{Headers: []string{"parameter", "control", "value"}}
	for _, c := range p.Controls {
		value := FormatValue(c.Value)
		if c.Kind == ControlColorPicker {
			if v, ok := c.Value.(mgl32.Vec3); ok {
				value = HexColor(v)
			}
		}
		table.Rows = append(table.Rows, []string{c.Name, c.Kind.String(), value})
	}
	return table
}

func (p *ControlPanel) TakeNotices() []core.Notice {
	out := p.Notices
	p.Notices = nil
	return out
}

func (p *ControlPanel) String() string {
	return p.Shaders.String() + p.Shapes.String() + p.Parameters().String()
}

// ControlsModule keeps a ControlPanel in sync with the selection. Install it
// after GalleryModule.
type ControlsModule struct{}

func (ControlsModule) Install(app *App, cmd *Commands) {
	if Resource[core.Selection](app) == nil {
		panic("ControlsModule: GalleryModule must be installed first")
	}
	cmd.AddResources(&ControlPanel{})
	cmd.UseSystem(System(controlsSystem).InStage(PostUpdate))
}

func controlsSystem(sel *core.Selection, panel *ControlPanel) {
	mat := sel.MaterialCopy()
	if mat == nil {
		return
	}
	if mat.ID != panel.MaterialID {
		panel.Shaders = menu("Shaders", sel.ShaderCatalog().Names(), mat.ShaderName)
		panel.MaterialID = mat.ID
	}
	shape := ""
	if s := sel.CurrentShape(); s != nil {
		shape = s.Name
	}
	panel.Shapes = menu("Shapes", sel.ShapeCatalog().Names(), shape)
	panel.Controls = BuildControls(mat.DeclaredUniforms(), mat)

	if drained := sel.Notices().Drain(); len(drained) > 0 {
		panel.Notices = append(panel.Notices, drained...)
		if over := len(panel.Notices) - core.DefaultNoticeLimit; over > 0 {
			panel.Notices = panel.Notices[over:]
		}
	}
}
